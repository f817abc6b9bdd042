package mirror

type AccountInfo struct {
	Account string         `json:"account"`
	Balance AccountBalance `json:"balance"`
	Key     map[string]any `json:"key"`
	Memo    string         `json:"memo"`
	Deleted bool           `json:"deleted"`
}

type AccountBalance struct {
	Balance   int64          `json:"balance"`
	Timestamp string         `json:"timestamp"`
	Tokens    []TokenBalance `json:"tokens"`
}

type TokenBalance struct {
	TokenID string `json:"token_id"`
	Balance int64  `json:"balance"`
}

type TokenRelationship struct {
	TokenID              string `json:"token_id"`
	Balance              int64  `json:"balance"`
	Decimals             int    `json:"decimals"`
	FreezeStatus         string `json:"freeze_status"`
	KYCStatus            string `json:"kyc_status"`
	AutomaticAssociation bool   `json:"automatic_association"`
	CreatedTimestamp     string `json:"created_timestamp"`
}

type TokenInfo struct {
	TokenID           string         `json:"token_id"`
	Name              string         `json:"name"`
	Symbol            string         `json:"symbol"`
	Type              string         `json:"type"`
	SupplyType        string         `json:"supply_type"`
	Decimals          string         `json:"decimals"`
	TotalSupply       string         `json:"total_supply"`
	MaxSupply         string         `json:"max_supply"`
	TreasuryAccountID string         `json:"treasury_account_id"`
	FreezeDefault     bool           `json:"freeze_default"`
	Deleted           bool           `json:"deleted"`
	Memo              string         `json:"memo"`
	AdminKey          map[string]any `json:"admin_key"`
	SupplyKey         map[string]any `json:"supply_key"`
	FreezeKey         map[string]any `json:"freeze_key"`
	WipeKey           map[string]any `json:"wipe_key"`
	CreatedTimestamp  string         `json:"created_timestamp"`
}

type NFT struct {
	AccountID        string `json:"account_id"`
	TokenID          string `json:"token_id"`
	SerialNumber     int64  `json:"serial_number"`
	Metadata         string `json:"metadata"`
	Deleted          bool   `json:"deleted"`
	CreatedTimestamp string `json:"created_timestamp"`
}

type tokenRelationshipsResponse struct {
	Tokens []TokenRelationship `json:"tokens"`
	Links  struct {
		Next string `json:"next"`
	} `json:"links"`
}

type nftsResponse struct {
	NFTs  []NFT `json:"nfts"`
	Links struct {
		Next string `json:"next"`
	} `json:"links"`
}
