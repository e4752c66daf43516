package web

import (
	"fmt"
	"strings"

	"github.com/Zentaurios/basex402/internal/tier"
)

// Attribute is one ERC-721 metadata trait.
type Attribute struct {
	TraitType   string `json:"trait_type"`
	Value       any    `json:"value"`
	DisplayType string `json:"display_type,omitempty"`
}

// TokenMetadata is the ERC-721 JSON document served for one token.
type TokenMetadata struct {
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Image           string      `json:"image"`
	AnimationURL    string      `json:"animation_url"`
	ExternalURL     string      `json:"external_url"`
	BackgroundColor string      `json:"background_color"`
	Attributes      []Attribute `json:"attributes"`
}

type tierCopy struct {
	description string
	background  string // hex without '#'
}

var tierCopies = map[string]tierCopy{
	"genesis": {
		description: "Genesis Pioneer: One of the first 10 adopters of the x402 micropayment protocol. This ultra-rare NFT represents true pioneering spirit in decentralized payments.",
		background:  "1a1a2e",
	},
	"pioneer": {
		description: "Pioneer: Among the first 100 early adopters of the x402 payment protocol. A rare NFT commemorating early participation in the future of micropayments.",
		background:  "16213e",
	},
	"early-adopter": {
		description: "Early Adopter: One of the first 225 users to embrace x402 micropayments. This NFT proves a forward-thinking approach to decentralized payment solutions.",
		background:  "0f3460",
	},
	"protocol-user": {
		description: "Protocol User: A verified user of the x402 payment protocol. This NFT represents participation in the decentralized micropayment revolution.",
		background:  "533483",
	},
}

// Metadata builds the document for tokenID in cfg. Links are rooted at
// baseURL.
func Metadata(cfg tier.Config, tokenID int, baseURL string) TokenMetadata {
	base := strings.TrimRight(baseURL, "/")
	cp, ok := tierCopies[cfg.Slug()]
	if !ok {
		bg, _ := cfg.Color(tier.Background)
		cp = tierCopy{
			description: fmt.Sprintf("%s: a member of the x402 Protocol Pioneers collection.", cfg.Name()),
			background:  strings.TrimPrefix(tier.Hex(bg), "#"),
		}
	}
	r := cfg.Rarity()
	return TokenMetadata{
		Name:            fmt.Sprintf("x402 Protocol Pioneer #%d - %s", tokenID, cfg.Name()),
		Description:     cp.description,
		Image:           fmt.Sprintf("%s/%d/image", base, tokenID),
		AnimationURL:    fmt.Sprintf("%s/%d/animation", base, tokenID),
		ExternalURL:     fmt.Sprintf("%s/%d", base, tokenID),
		BackgroundColor: cp.background,
		Attributes: []Attribute{
			{TraitType: "Rarity Tier", Value: cfg.Name()},
			{TraitType: "Tier Rank", Value: r.Rank, DisplayType: "string"},
			{TraitType: "Total in Tier", Value: cfg.TokenCount(), DisplayType: "number"},
			{TraitType: "Rarity Score", Value: r.Score, DisplayType: "number"},
			{TraitType: "Pioneer Number", Value: tokenID, DisplayType: "number"},
		},
	}
}
