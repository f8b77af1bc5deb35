package db

// SchemaSQL is the complete schema for fresh deskflow installs.
//
// This is the single source of truth for the database schema. All repository
// tests apply it via GetSchemaSQL(), so a repository referencing a column
// that does not exist here fails immediately with "no such column" instead
// of drifting silently.
const SchemaSQL = `
-- Portfolios (one per coverage area, owns the thesis and EV signal)
CREATE TABLE IF NOT EXISTS portfolios (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	analyst_id TEXT NOT NULL,
	thesis_updated_at DATETIME,
	expected_return REAL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Trade ideas
CREATE TABLE IF NOT EXISTS ideas (
	id TEXT PRIMARY KEY,
	portfolio_id TEXT NOT NULL,
	ticker TEXT NOT NULL,
	title TEXT NOT NULL,
	notes TEXT,
	status TEXT NOT NULL CHECK(status IN ('active', 'closed')) DEFAULT 'active',
	simulated INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (portfolio_id) REFERENCES portfolios(id)
);

-- Proposals submitted for decision
CREATE TABLE IF NOT EXISTS proposals (
	id TEXT PRIMARY KEY,
	idea_id TEXT,
	portfolio_id TEXT NOT NULL,
	ticker TEXT NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('pending', 'decided', 'withdrawn')) DEFAULT 'pending',
	submitted_at DATETIME NOT NULL,
	decided_at DATETIME,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (idea_id) REFERENCES ideas(id),
	FOREIGN KEY (portfolio_id) REFERENCES portfolios(id)
);

-- Decisions on proposals
CREATE TABLE IF NOT EXISTS decisions (
	id TEXT PRIMARY KEY,
	proposal_id TEXT NOT NULL,
	outcome TEXT NOT NULL CHECK(outcome IN ('approved', 'rejected')),
	decided_at DATETIME NOT NULL,
	executed INTEGER NOT NULL DEFAULT 0,
	executed_at DATETIME,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (proposal_id) REFERENCES proposals(id)
);

-- Rating changes on covered tickers
CREATE TABLE IF NOT EXISTS rating_changes (
	id TEXT PRIMARY KEY,
	portfolio_id TEXT NOT NULL,
	ticker TEXT NOT NULL,
	old_rating TEXT NOT NULL,
	new_rating TEXT NOT NULL,
	changed_at DATETIME NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (portfolio_id) REFERENCES portfolios(id)
);

-- Per-analyst suppression of triage item types
CREATE TABLE IF NOT EXISTS dismissals (
	id TEXT PRIMARY KEY,
	analyst_id TEXT NOT NULL,
	portfolio_id TEXT NOT NULL,
	item_type TEXT NOT NULL,
	suppressed_until DATETIME NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (portfolio_id) REFERENCES portfolios(id)
);

-- Audit log of repository operations
CREATE TABLE IF NOT EXISTS operations_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	actor_id TEXT,
	entity_type TEXT NOT NULL,
	entity_id TEXT NOT NULL,
	action TEXT NOT NULL CHECK(action IN ('create', 'update', 'delete')),
	field_name TEXT,
	old_value TEXT,
	new_value TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_ideas_portfolio ON ideas(portfolio_id, status);
CREATE INDEX IF NOT EXISTS idx_proposals_portfolio ON proposals(portfolio_id, status);
CREATE INDEX IF NOT EXISTS idx_decisions_proposal ON decisions(proposal_id);
CREATE INDEX IF NOT EXISTS idx_rating_changes_portfolio ON rating_changes(portfolio_id, changed_at);
CREATE INDEX IF NOT EXISTS idx_dismissals_analyst ON dismissals(analyst_id, portfolio_id, suppressed_until);
`

// GetSchemaSQL returns the authoritative schema. Tests use this instead of
// hardcoding CREATE TABLE statements.
func GetSchemaSQL() string {
	return SchemaSQL
}
