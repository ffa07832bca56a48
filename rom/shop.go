package rom

import (
	"fmt"
	"os"

	"aidynedit/readers"
	"aidynedit/tables"
	"aidynedit/types"
)

// Shop is the decoded view of a shop or trainer. Items is nil for pure
// trainers, which have no inventory.
type Shop struct {
	Label  string
	Becan  bool
	Skills *types.Record
	Shield *types.Record
	Spells *types.Record
	Items  *types.Record
}

// Records lists the shop's regions in write order.
func (sh *Shop) Records() []*types.Record {
	out := []*types.Record{sh.Skills, sh.Shield, sh.Spells}
	if sh.Items != nil {
		out = append(out, sh.Items)
	}
	return out
}

// Shops lists every shop label, Becan first under the name in his party record.
func (s *Session) Shops() ([]string, error) {
	becan, err := s.read(tables.BECAN_ADDRESS, tables.BECAN_NAME_WIDTH)
	if err != nil {
		return nil, fmt.Errorf("reading Becan's name: %w", err)
	}
	out := make([]string, len(tables.Shops))
	for i, sh := range tables.Shops {
		out[i] = sh.Label
	}
	out[0] = tables.BECAN_PREFIX + readers.Decode_name(becan)
	return out, nil
}

// shop_regions pairs each region kind with its address for shop i.
// Becan is a party member as well as a trainer and keeps the party
// convention for untaught skills.
func shop_regions(i int) (skills, shield, spells, items *types.RecordKind, sh tables.Shop) {
	sh = tables.Shops[i]
	skills = tables.TrainerSkills
	if i == 0 {
		skills = tables.BecanSkills
	}
	return skills, tables.ShopShield, tables.ShopSpells, tables.ShopItems, sh
}

// LoadShop decodes all regions of shop i (an index into Shops()).
func (s *Session) LoadShop(i int) (*Shop, error) {
	if i < 0 || i >= len(tables.Shops) {
		return nil, ErrNothingSelected
	}
	labels, err := s.Shops()
	if err != nil {
		return nil, err
	}
	skills, shield, spells, items, sh := shop_regions(i)

	out := &Shop{Label: labels[i], Becan: i == 0}
	if out.Skills, err = s.Load(skills, sh.Skills); err != nil {
		return nil, err
	}
	if out.Shield, err = s.Load(shield, sh.Shield); err != nil {
		return nil, err
	}
	if out.Spells, err = s.Load(spells, sh.Spells); err != nil {
		return nil, err
	}
	if sh.Items != 0 {
		if out.Items, err = s.Load(items, sh.Items); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SaveShop writes every region of a shop under one failure boundary.
// Regions are matched to addresses by shop index, not by what the records
// claim, so a pure trainer never gets an inventory written.
func (s *Session) SaveShop(i int, shop *Shop) (*Shop, error) {
	if i < 0 || i >= len(tables.Shops) {
		return nil, ErrNothingSelected
	}
	skills, shield, spells, items, sh := shop_regions(i)

	regions := []*types.Record{
		with_kind(shop.Skills, skills, sh.Skills),
		with_kind(shop.Shield, shield, sh.Shield),
		with_kind(shop.Spells, spells, sh.Spells),
	}
	if sh.Items != 0 && shop.Items != nil {
		regions = append(regions, with_kind(shop.Items, items, sh.Items))
	}

	err := s.transaction("shop "+sh.Label, func(f *os.File) ([]patch, error) {
		out := []patch{}
		for _, r := range regions {
			p, err := s.encode(f, r)
			if err != nil {
				return nil, err
			}
			out = append(out, p...)
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	s.Logger.Info("saved", "shop", sh.Label)
	return s.LoadShop(i)
}

// with_kind points a region record at the right kind and address, whatever it was loaded as.
func with_kind(rec *types.Record, kind *types.RecordKind, addr int64) *types.Record {
	out := &types.Record{Kind: kind, Address: addr, Values: map[string]types.Value{}}
	if rec != nil {
		out.Values = rec.Values
	}
	return out
}
