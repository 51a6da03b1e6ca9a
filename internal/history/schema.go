package history

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    saved_at        TEXT NOT NULL,
    income          REAL NOT NULL,
    savings_goal    REAL NOT NULL,
    total_expenses  REAL NOT NULL,
    categories      INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshots_saved_at ON snapshots(saved_at);
`
