package models

// LedgerContext is the type for keys set on the gin context.
type LedgerContext string

const (
	DBContextURL     LedgerContext = "ledger-backend-url"
	DBContextUserID  LedgerContext = "ledger-user-id"
	DBContextSession LedgerContext = "ledger-session-id"
)

// ContextEvaluator is the key for the budget.Evaluator handlers use.
const ContextEvaluator LedgerContext = "ledger-evaluator"
