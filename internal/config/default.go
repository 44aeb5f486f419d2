package config

// Default returns the built-in machine: the 26-letter alphabet, five slots
// with three pawls, the eight numbered moving rotors, the Beta and Gamma
// fixed rotors, and the B and C reflectors.
func Default() Definition {
	return Definition{
		Alphabet: "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		Rotors:   5,
		Pawls:    3,
		Catalog: []RotorDef{
			{Name: "I", Kind: "moving", Notches: "Q",
				Cycles: "(AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)"},
			{Name: "II", Kind: "moving", Notches: "E",
				Cycles: "(FIXVYOMW) (CDKLHUP) (ESZ) (BJ) (GR) (NT) (A) (Q)"},
			{Name: "III", Kind: "moving", Notches: "V",
				Cycles: "(ABDHPEJT) (CFLVMZOYQIRWUKXSG) (N)"},
			{Name: "IV", Kind: "moving", Notches: "J",
				Cycles: "(AEPLIYWCOXMRFZBSTGJQNH) (DV) (KU)"},
			{Name: "V", Kind: "moving", Notches: "Z",
				Cycles: "(AVOLDRWFIUQ) (BZKSMNHYC) (EGTJPX)"},
			{Name: "VI", Kind: "moving", Notches: "ZM",
				Cycles: "(AJQDVLEOZWIYTS) (CGMNHFUX) (BPRK)"},
			{Name: "VII", Kind: "moving", Notches: "ZM",
				Cycles: "(ANOUPFRIMBZTLWKSVEGCJYDHXQ)"},
			{Name: "VIII", Kind: "moving", Notches: "ZM",
				Cycles: "(AFLSETWUNDHOZVICQ) (BKJ) (GXY) (MPR)"},
			{Name: "Beta", Kind: "fixed",
				Cycles: "(ALBEVFCYODJWUGNMQTZSKPR) (HIX)"},
			{Name: "Gamma", Kind: "fixed",
				Cycles: "(AFNIRLBSQWVXGUZDKMTPCOYJHE)"},
			{Name: "B", Kind: "reflector",
				Cycles: "(AE) (BN) (CK) (DQ) (FU) (GY) (HW) (IJ) (LO) (MP) (RX) (SZ) (TV)"},
			{Name: "C", Kind: "reflector",
				Cycles: "(AR) (BD) (CO) (EJ) (FN) (GT) (HK) (IV) (LM) (PW) (QZ) (SX) (UY)"},
		},
	}
}
