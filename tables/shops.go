package tables

// Shop ties together the four regions of one shop or trainer.
// Items is 0 for pure trainers, which have no inventory.
type Shop struct {
	Label  string
	Skills int64
	Shield int64
	Spells int64
	Items  int64
}

// Shops lists Becan first; his label is replaced at runtime by the name in
// his party record.
var Shops = []Shop{
	{"Erromon : Becan", 0x01FC7ED3, 0x01FC7F19, 0x01FC7EFB, 0x01FD50EE},
	{"Erromon : Cavern Female", 0x01FC5007, 0x01FC504D, 0x01FC502F, 0x01FD3F36},
	{"Erromon : Cavern Male", 0x01FC508F, 0x01FC50D5, 0x01FC50B7, 0x01FD3FA2},
	{"Erromon : Shop-A Male", 0x01FC2C6F, 0x01FC2CB5, 0x01FC2C97, 0x01FD4446},
	{"Erromon : Shop-B Female 1", 0x01FC2BE7, 0x01FC2C2D, 0x01FC2C0F, 0x01FD4152},
	{"Erromon : Shop-B Female 2", 0x01FC3027, 0x01FC306D, 0x01FC304F, 0x01FD44B2},
	{"Erromon : Shop-B Male", 0x01FC2F9F, 0x01FC2FE5, 0x01FC2FC7, 0x01FD41BE},
	{"Erromon : Shop-C Female 1", 0x01FC2CF7, 0x01FC2D3D, 0x01FC2D1F, 0x01FD43DA},
	{"Erromon : Shop-C Female 2", 0x01FC2D7F, 0x01FC2DC5, 0x01FC2DA7, 0x01FD436E},
	{"Erromon : Shop-C Female 3", 0x01FC2E07, 0x01FC2E4D, 0x01FC2E2F, 0x01FD4302},
	{"Erromon : Shop-C Female 4", 0x01FC2E8F, 0x01FC2ED5, 0x01FC2EB7, 0x01FD4296},
	{"Erromon : Shop-D Female", 0x01FC2F17, 0x01FC2F5D, 0x01FC2F3F, 0x01FD422A},
	{"Erromon : Shop-D Male", 0x01FC30AF, 0x01FC30F5, 0x01FC30D7, 0x01FD40E6},
	{"Erromon : Shop-E Female", 0x01FC3247, 0x01FC328D, 0x01FC326F, 0x01FD400E},
	{"Erromon : Shop-E Male", 0x01FC31BF, 0x01FC3205, 0x01FC31E7, 0x01FD407A},
	{"Gwernia : Shop-A", 0x01FC519F, 0x01FC51E5, 0x01FC51C7, 0x01FD3E5E},
	{"Gwernia : Shop-B", 0x01FC5117, 0x01FC515D, 0x01FC513F, 0x01FD3DF2},
	{"Port Saiid : Shop-A Bandit", 0x01FC491F, 0x01FC4965, 0x01FC4947, 0x01FD328E},
	{"Port Saiid : Shop-A Female", 0x01FC49A7, 0x01FC49ED, 0x01FC49CF, 0x01FD3AFE},
	{"Port Saiid : Shop-B", 0x01FC4B3F, 0x01FC4B85, 0x01FC4B67, 0x01FD3C42},
	{"Port Saiid : Shop-C", 0x01FC4A2F, 0x01FC4A75, 0x01FC4A57, 0x01FD3B6A},
	{"Port Saiid : Shop-D", 0x01FC4BC7, 0x01FC4C0D, 0x01FC4BEF, 0x01FD3CAE},
	{"Port Saiid : Shop-E", 0x01FC4C4F, 0x01FC4C95, 0x01FC4C77, 0x01FD3D1A},
	{"Port Saiid : Shop-F", 0x01FC4AB7, 0x01FC4AFD, 0x01FC4ADF, 0x01FD3BD6},
	{"Talewok : Dryad", 0x01FC5C43, 0x01FC5C89, 0x01FC5C6B, 0x00000000},
	{"Talewok : Professor 1", 0x01FC4DE7, 0x01FC4E2D, 0x01FC4E0F, 0x00000000},
	{"Talewok : Professor 2", 0x01FC4F7F, 0x01FC4FC5, 0x01FC4FA7, 0x00000000},
	{"Talewok : Professor 3", 0x01FC4EF7, 0x01FC4F3D, 0x01FC4F1F, 0x00000000},
	{"Talewok : Shop-A Female", 0x01FC4457, 0x01FC449D, 0x01FC447F, 0x01FD380A},
	{"Talewok : Shop-A Male", 0x01FC44DF, 0x01FC4525, 0x01FC4507, 0x01FD3876},
	{"Talewok : Shop-B", 0x01FC4787, 0x01FC47CD, 0x01FC47AF, 0x01FD3A92},
	{"Talewok : Shop-C", 0x01FC4677, 0x01FC46BD, 0x01FC469F, 0x01FD39BA},
	{"Talewok : Shop-D", 0x01FC46FF, 0x01FC4745, 0x01FC4727, 0x01FD3A26},
	{"Talewok : Shop-E", 0x01FC4567, 0x01FC45AD, 0x01FC458F, 0x01FD38E2},
	{"Talewok : Shop-F", 0x01FC45EF, 0x01FC4635, 0x01FC4617, 0x01FD394E},
	{"Terminor : Mago's House", 0x01FC3D6F, 0x01FC3DB5, 0x01FC3D97, 0x01FD4F3E},
	{"Terminor : Shop-A", 0x01FC3C5F, 0x01FC3CA5, 0x01FC3C87, 0x01FD5016},
	{"Terminor : Shop-B", 0x01FC3E7F, 0x01FC3EC5, 0x01FC3EA7, 0x01FD4E66},
	{"Terminor : Shop-C", 0x01FC3F07, 0x01FC3F4D, 0x01FC3F2F, 0x01FD4DFA},
	{"Terminor : Shop-D", 0x01FC3F8F, 0x01FC3FD5, 0x01FC3FB7, 0x01FD4D8E},
	{"Terminor : Shop-E", 0x01FC3BD7, 0x01FC3C1D, 0x01FC3BFF, 0x01FD5082},
	{"Terminor : Shop-F", 0x01FC4017, 0x01FC405D, 0x01FC403F, 0x01FD4D22},
	{"Terminor : Tamberlain", 0x01FC7297, 0x01FC72DD, 0x01FC72BF, 0x01FD4C4A},
	{"Ugarit : Frysil", 0x01FC3AC7, 0x01FC3B0D, 0x01FC3AEF, 0x01FD458A},
	{"Ugarit : Library", 0x01FC3467, 0x01FC34AD, 0x01FC348F, 0x01FD4A9A},
	{"Ugarit : Shop-A", 0x01FC3797, 0x01FC37DD, 0x01FC37BF, 0x01FD4812},
	{"Ugarit : Shop-B", 0x01FC35FF, 0x01FC3645, 0x01FC3627, 0x01FD4956},
	{"Ugarit : Shop-C", 0x01FC3687, 0x01FC36CD, 0x01FC36AF, 0x01FD48EA},
	{"Ugarit : Shop-D", 0x01FC3A3F, 0x01FC3A85, 0x01FC3A67, 0x01FD45F6},
	{"Ugarit : Shop-E", 0x01FC34EF, 0x01FC3535, 0x01FC3517, 0x01FD4A2E},
	{"Ugarit : Shop-F", 0x01FC33DF, 0x01FC3425, 0x01FC3407, 0x01FD4B06},
	{"Ugarit : Shop-G", 0x01FC381F, 0x01FC3865, 0x01FC3847, 0x01FD47A6},
	{"Ugarit : Shop-H", 0x01FC3B4F, 0x01FC3B95, 0x01FC3B77, 0x01FD451E},
}
