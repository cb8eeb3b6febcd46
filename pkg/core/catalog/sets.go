package catalog

import (
	"strconv"

	"github.com/wadjakorntonsri/coin-collection/pkg/core/domain"
)

var westPointCoins = func() *Series {
	const dime, cent, quarter = 0, 1, 2
	issues := []issue{
		{id: "1996 Roosevelt Dime", year: 1996, image: dime},
		{id: "2019 Lincoln Cent", year: 2019, image: cent},
		{id: "2019 Lincoln Cent Proof", year: 2019, image: cent},
		{id: "2019 Lincoln Cent Reverse Proof", year: 2019, image: cent},
	}
	for i, n := range parkNames[45:55] {
		year := 2019 + i/5
		issues = append(issues, issue{id: strconv.Itoa(year) + " " + n, year: year, image: quarter})
	}
	for i := range issues {
		issues[i].mint = "W"
	}
	return &Series{
		Name:      "West Point Mint",
		FaceValue: face("0"),
		Images:    named("west_point", "Roosevelt Dime", "Lincoln Cent", "Park Quarter"),
		Obverse:   "obv_roosevelt_dime",
		Reverse:   "rev_park_quarter",
		issues:    issues,
	}
}()

// Image ids of coin sets. Silver proof sets come before proof sets so that
// suffix matching picks the more specific label.
const (
	setMint = iota
	setSilverProof
	setProof
)

var coinSets = func() *Series {
	var issues []issue
	for y := 1947; y <= StillInProduction; y++ {
		id := strconv.Itoa(y)
		switch {
		case y >= 1965 && y <= 1967:
			issues = append(issues, issue{id: id, year: y, mint: " Special Mint Set", requires: domain.CheckMintSets, image: setMint})
		case y != 1950 && y != 1982 && y != 1983:
			issues = append(issues, issue{id: id, year: y, mint: " Mint Set", requires: domain.CheckMintSets, image: setMint})
		}
		if y >= 1950 && (y < 1965 || y > 1967) {
			issues = append(issues, issue{id: id, year: y, mint: " Proof Set", requires: domain.CheckProofSets, image: setProof})
		}
		if y >= 1992 {
			issues = append(issues, issue{id: id, year: y, mint: " Silver Proof Set", requires: domain.CheckSilverProofSets, image: setSilverProof})
		}
	}
	return &Series{
		Name:      "Coin Sets",
		FaceValue: face("0"),
		Checkboxes: []Toggle{
			check(domain.CheckMintSets, "Include mint sets", true),
			check(domain.CheckProofSets, "Include proof sets", true),
			check(domain.CheckSilverProofSets, "Include silver proof sets", false),
		},
		Images:  named("coin_set", "Mint Set", "Silver Proof Set", "Proof Set"),
		Obverse: "coin_set_mint_set",
		Reverse: "coin_set_proof_set",
		issues:  issues,
	}
}()
