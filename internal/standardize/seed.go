package standardize

import "crediscope/internal/domain"

// seedIdentities is the built-in creditor dictionary used when the external
// store is empty or unreachable. Aliases are stored normalized.
var seedIdentities = []domain.CreditorIdentity{
	{StandardizedName: "Chase Bank", RegistryCode: "CHASE", Industry: "banking", Aliases: []string{"chase", "chase bank", "jpmcb", "jp morgan chase", "jpmorgan chase bank"}},
	{StandardizedName: "Bank of America", RegistryCode: "BOFA", Industry: "banking", Aliases: []string{"bank of america", "bofa", "boa", "bk of amer"}},
	{StandardizedName: "Capital One", RegistryCode: "CAPONE", Industry: "banking", Aliases: []string{"capital one", "cap one", "capital one bank", "cap1"}},
	{StandardizedName: "Citibank", RegistryCode: "CITI", Industry: "banking", Aliases: []string{"citibank", "citi", "citicards", "citibank na"}},
	{StandardizedName: "Wells Fargo", RegistryCode: "WF", Industry: "banking", Aliases: []string{"wells fargo", "wf", "wells fargo bank", "wells fargo card services"}},
	{StandardizedName: "Discover", RegistryCode: "DISC", Industry: "banking", Aliases: []string{"discover", "discover bank", "discover financial", "discover card"}},
	{StandardizedName: "American Express", RegistryCode: "AMEX", Industry: "banking", Aliases: []string{"american express", "amex", "amex bank"}},
	{StandardizedName: "Synchrony Bank", RegistryCode: "SYNCB", Industry: "banking", Aliases: []string{"synchrony", "synchrony bank", "syncb"}},
	{StandardizedName: "US Bank", RegistryCode: "USB", Industry: "banking", Aliases: []string{"us bank", "u.s. bank", "us bancorp"}},
	{StandardizedName: "Navient", RegistryCode: "NAVI", Industry: "education_finance", Aliases: []string{"navient", "navient solutions"}},
	{StandardizedName: "Nelnet", RegistryCode: "NELNET", Industry: "education_finance", Aliases: []string{"nelnet", "nelnet loan services"}},
	{StandardizedName: "Toyota Financial Services", RegistryCode: "TOYF", Industry: "auto_finance", Aliases: []string{"toyota financial", "toyota motor credit", "tmcc"}},
	{StandardizedName: "Ally Financial", RegistryCode: "ALLY", Industry: "auto_finance", Aliases: []string{"ally", "ally financial", "ally bank"}},
	{StandardizedName: "Portfolio Recovery Associates", RegistryCode: "PRA", Industry: "collections", Aliases: []string{"portfolio recovery", "portfolio recovery associates", "pra"}},
	{StandardizedName: "Midland Credit Management", RegistryCode: "MCM", Industry: "collections", Aliases: []string{"midland credit", "midland credit management", "midland funding", "mcm"}},
	{StandardizedName: "LVNV Funding", RegistryCode: "LVNV", Industry: "collections", Aliases: []string{"lvnv", "lvnv funding"}},
	{StandardizedName: "Rocket Mortgage", RegistryCode: "RKT", Industry: "mortgage", Aliases: []string{"rocket mortgage", "quicken loans"}},
	{StandardizedName: "Mr. Cooper", RegistryCode: "COOP", Industry: "mortgage", Aliases: []string{"mr cooper", "mr. cooper", "nationstar mortgage"}},
}

// industryKeywords guesses an industry for newly minted identities.
// Checked in order; first hit wins.
var industryKeywords = []struct {
	industry string
	words    []string
}{
	{"collections", []string{"collection", "recovery", "receivable", "portfolio", "asset acceptance"}},
	{"auto_finance", []string{"auto", "motor", "toyota", "honda", "ford", "nissan", "vehicle"}},
	{"mortgage", []string{"mortgage", "home loan", "lending", "servicing"}},
	{"education_finance", []string{"student", "education", "sallie", "college"}},
	{"utilities", []string{"utility", "electric", "gas", "water", "power"}},
	{"telecom", []string{"wireless", "mobile", "telecom", "communications", "cellular"}},
	{"healthcare", []string{"medical", "health", "hospital", "clinic", "physician"}},
	{"banking", []string{"bank", "card", "credit union", "financial", "capital"}},
}
