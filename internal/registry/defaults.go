package registry

// DefaultTables returns the builtin parameter set: a compact but complete
// covalent-chemistry and force-field dataset covering the common protein
// heavy elements (C, N, O, S, H), the rotatable side-chain bonds of the
// standard amino acid residue types, and hydrogen names for a subset of
// their side-chain heavy atoms (see defaultHydrogenNames). It is the
// registry used whenever no snapshot file is loaded via LoadTables.
func DefaultTables() *Tables {
	return &Tables{
		CovalentRadius: defaultCovalentRadii(),
		VdWRadius:      defaultVdWRadii(),
		PartialCharge:  defaultPartialCharges(),
		BondLengths:    defaultBondLengths(),
		RotatableBonds: defaultRotatableBonds(),
		HydrogenNames:  defaultHydrogenNames(),
		ForceField:     defaultForceField(),
	}
}

func defaultCovalentRadii() map[string]CovalentRadii {
	return map[string]CovalentRadii{
		"C": {SP3: 0.76, SP2: 0.73, SP: 0.69},
		"N": {SP3: 0.71, SP2: 0.68, SP: 0.66},
		"O": {SP3: 0.66, SP2: 0.63, SP: 0.63},
		"S": {SP3: 1.05, SP2: 1.02, SP: 1.02},
		"H": {SP3: 0.31, SP2: 0.31, SP: 0.31},
	}
}

func defaultVdWRadii() map[string]float64 {
	return map[string]float64{
		"C": 1.70,
		"N": 1.55,
		"O": 1.52,
		"S": 1.80,
		"H": 1.10,
	}
}

func defaultPartialCharges() map[string]float64 {
	// Coarse per-element defaults; residue-specific charges are not
	// modeled, so every atom of a given element shares one value regardless
	// of its residue.
	return map[string]float64{
		"C": 0.0,
		"N": -0.4,
		"O": -0.4,
		"S": -0.1,
		"H": 0.3,
	}
}

// defaultBondLengths lists, per element, the candidate bond lengths it is
// known to form in the twenty standard residues (Angstroms). The bond
// builder (package neighbor) tests the observed inter-atom distance against
// each length in either endpoint's list within ForceField.LengthError; it
// does not form pairwise combinations of the two lists.
func defaultBondLengths() map[string][]float64 {
	return map[string][]float64{
		"C": {1.20, 1.33, 1.39, 1.50, 1.54},
		"N": {1.33, 1.34, 1.45, 1.47},
		"O": {1.20, 1.23, 1.41, 1.43},
		"S": {1.81, 2.05},
		"H": {0.96, 1.01, 1.09},
	}
}

// defaultRotatableBonds encodes the chi-angle topology of the standard
// amino acids that actually have rotatable side chains (residues without
// one, e.g. GLY and ALA, are simply absent -- ChiBonds returns nil for
// them, which the sampler treats as zero-rotamer).
func defaultRotatableBonds() map[string][]ChiBond {
	return map[string][]ChiBond{
		"SER": {
			{Name: "chi1", A: "N", B: "CA", C: "CB", D: "OG"},
		},
		"CYS": {
			{Name: "chi1", A: "N", B: "CA", C: "CB", D: "SG"},
		},
		"THR": {
			{Name: "chi1", A: "N", B: "CA", C: "CB", D: "OG1"},
		},
		"VAL": {
			{Name: "chi1", A: "N", B: "CA", C: "CB", D: "CG1"},
		},
		"LEU": {
			{Name: "chi1", A: "N", B: "CA", C: "CB", D: "CG"},
			{Name: "chi2", A: "CA", B: "CB", C: "CG", D: "CD1"},
		},
		"ILE": {
			{Name: "chi1", A: "N", B: "CA", C: "CB", D: "CG1"},
			{Name: "chi2", A: "CA", B: "CB", C: "CG1", D: "CD1"},
		},
		"ASP": {
			{Name: "chi1", A: "N", B: "CA", C: "CB", D: "CG"},
			{Name: "chi2", A: "CA", B: "CB", C: "CG", D: "OD1"},
		},
		"ASN": {
			{Name: "chi1", A: "N", B: "CA", C: "CB", D: "CG"},
			{Name: "chi2", A: "CA", B: "CB", C: "CG", D: "OD1"},
		},
		"GLU": {
			{Name: "chi1", A: "N", B: "CA", C: "CB", D: "CG"},
			{Name: "chi2", A: "CA", B: "CB", C: "CG", D: "CD"},
			{Name: "chi3", A: "CB", B: "CG", C: "CD", D: "OE1"},
		},
		"GLN": {
			{Name: "chi1", A: "N", B: "CA", C: "CB", D: "CG"},
			{Name: "chi2", A: "CA", B: "CB", C: "CG", D: "CD"},
			{Name: "chi3", A: "CB", B: "CG", C: "CD", D: "OE1"},
		},
		"MET": {
			{Name: "chi1", A: "N", B: "CA", C: "CB", D: "CG"},
			{Name: "chi2", A: "CA", B: "CB", C: "CG", D: "SD"},
			{Name: "chi3", A: "CB", B: "CG", C: "SD", D: "CE"},
		},
		"LYS": {
			{Name: "chi1", A: "N", B: "CA", C: "CB", D: "CG"},
			{Name: "chi2", A: "CA", B: "CB", C: "CG", D: "CD"},
			{Name: "chi3", A: "CB", B: "CG", C: "CD", D: "CE"},
			{Name: "chi4", A: "CG", B: "CD", C: "CE", D: "NZ"},
		},
		"ARG": {
			{Name: "chi1", A: "N", B: "CA", C: "CB", D: "CG"},
			{Name: "chi2", A: "CA", B: "CB", C: "CG", D: "CD"},
			{Name: "chi3", A: "CB", B: "CG", C: "CD", D: "NE"},
			{Name: "chi4", A: "CG", B: "CD", C: "NE", D: "CZ"},
		},
		"HIS": {
			{Name: "chi1", A: "N", B: "CA", C: "CB", D: "CG"},
			{Name: "chi2", A: "CA", B: "CB", C: "CG", D: "ND1"},
		},
		"PHE": {
			{Name: "chi1", A: "N", B: "CA", C: "CB", D: "CG"},
			{Name: "chi2", A: "CA", B: "CB", C: "CG", D: "CD1"},
		},
		"TYR": {
			{Name: "chi1", A: "N", B: "CA", C: "CB", D: "CG"},
			{Name: "chi2", A: "CA", B: "CB", C: "CG", D: "CD1"},
		},
		"TRP": {
			{Name: "chi1", A: "N", B: "CA", C: "CB", D: "CG"},
			{Name: "chi2", A: "CA", B: "CB", C: "CG", D: "CD1"},
		},
	}
}

func defaultHydrogenNames() map[string]map[string][]string {
	return map[string]map[string][]string{
		"SER": {"OG": {"HG"}, "CB": {"HB2", "HB3"}},
		"CYS": {"SG": {"HG"}, "CB": {"HB2", "HB3"}},
		"THR": {"OG1": {"HG1"}, "CB": {"HB"}},
		"VAL": {"CB": {"HB"}, "CG1": {"HG11", "HG12", "HG13"}, "CG2": {"HG21", "HG22", "HG23"}},
		"ASN": {"ND2": {"HD21", "HD22"}},
		"GLN": {"NE2": {"HE21", "HE22"}},
		"LYS": {"NZ": {"HZ1", "HZ2", "HZ3"}},
		"ARG": {"NE": {"HE"}, "NH1": {"HH11", "HH12"}, "NH2": {"HH21", "HH22"}},
		"TYR": {"OH": {"HH"}},
	}
}

func defaultForceField() ForceFieldCoefficients {
	return ForceFieldCoefficients{
		LJEpsilon:    0.10,
		HBondEpsilon: 4.0,
		RSigma:       1.50,
		CoulombK:     332.0,
		SoftSphereN:  12.0,
		TorsionPhase: 3.0,

		CutoffAtom:    6.0,
		CutoffResidue: 10.0,
		CutoffStart:   2.5,
		CutoffEnd:     5.0,

		LengthError: 0.10,
	}
}
