package migrations

import "embed"

// FS embeds the campaign schema: the id counter, campaigns, the
// contribution ledger and the payout outbox. golang-migrate reads it via
// the iofs driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version Migrate moves to.
const Version = 1
