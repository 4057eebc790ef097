package strategy

import "crediscope/internal/domain"

const fcra = "Fair Credit Reporting Act"

// legalBases maps each dispute type to its statutory grounding. This is a
// curated lookup table, not a generative process; callers can swap it via
// engine options since its precision is a legal decision, not an
// engineering one.
var legalBases = map[domain.NegativeItemType]domain.LegalBasis{
	domain.NegativeLatePayment: {
		PrimaryLaw:     fcra,
		Sections:       []string{"Section 611"},
		CaseReferences: []string{"Cushman v. Trans Union Corp., 115 F.3d 220 (3d Cir. 1997)"},
		Enforcement:    []string{"bureau reinvestigation", "furnisher dispute"},
	},
	domain.NegativeCollection: {
		PrimaryLaw:     fcra,
		Sections:       []string{"Section 611", "Section 623"},
		CaseReferences: []string{"Johnson v. MBNA America Bank, 357 F.3d 426 (4th Cir. 2004)"},
		Enforcement:    []string{"bureau reinvestigation", "debt validation under FDCPA 809"},
	},
	domain.NegativeChargeOff: {
		PrimaryLaw:     fcra,
		Sections:       []string{"Section 611", "Section 623"},
		CaseReferences: []string{"Saunders v. Branch Banking & Trust, 526 F.3d 142 (4th Cir. 2008)"},
		Enforcement:    []string{"bureau reinvestigation", "furnisher accuracy duty"},
	},
	domain.NegativeBankruptcy: {
		PrimaryLaw:  fcra,
		Sections:    []string{"Section 605(a)(1)", "Section 611"},
		Enforcement: []string{"obsolescence removal after 10 years"},
	},
	domain.NegativeTaxLien: {
		PrimaryLaw:  fcra,
		Sections:    []string{"Section 605(a)(3)", "Section 611"},
		Enforcement: []string{"obsolescence removal", "bureau reinvestigation"},
	},
	domain.NegativeJudgment: {
		PrimaryLaw:  fcra,
		Sections:    []string{"Section 605(a)(2)", "Section 611"},
		Enforcement: []string{"obsolescence removal", "bureau reinvestigation"},
	},
	domain.NegativeForeclosure: {
		PrimaryLaw:  fcra,
		Sections:    []string{"Section 605(a)(4)", "Section 611"},
		Enforcement: []string{"bureau reinvestigation"},
	},
	domain.NegativeRepossession: {
		PrimaryLaw:  fcra,
		Sections:    []string{"Section 611", "Section 623"},
		Enforcement: []string{"bureau reinvestigation", "deficiency balance validation"},
	},
}

// genericBasis backstops any type missing from the table.
var genericBasis = domain.LegalBasis{
	PrimaryLaw:  fcra,
	Sections:    []string{"Section 611"},
	Enforcement: []string{"bureau reinvestigation"},
}

// strongLegalTypes have well-established dispute mappings; the outcome
// projection's confidence is a function of how many items fall here.
var strongLegalTypes = map[domain.NegativeItemType]bool{
	domain.NegativeLatePayment: true,
	domain.NegativeCollection:  true,
	domain.NegativeChargeOff:   true,
}

// basisFor returns the legal basis for a dispute type.
func basisFor(t domain.NegativeItemType, table map[domain.NegativeItemType]domain.LegalBasis) domain.LegalBasis {
	if b, ok := table[t]; ok {
		return b
	}
	return genericBasis
}
