package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Notes: free-text notes grouped by optional project
CREATE TABLE IF NOT EXISTS notes (
    note_id TEXT PRIMARY KEY,
    content TEXT NOT NULL,
    project TEXT NOT NULL DEFAULT '',
    tags TEXT NOT NULL DEFAULT '[]',  -- JSON array
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_notes_project ON notes(project);
CREATE INDEX IF NOT EXISTS idx_notes_created ON notes(created_at DESC);

-- Analyses: one row per recorded keyword run
CREATE TABLE IF NOT EXISTS analyses (
    analysis_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    batch_hash TEXT NOT NULL,
    note_count INTEGER NOT NULL,
    total_words INTEGER NOT NULL,
    unique_projects INTEGER NOT NULL,
    top_n INTEGER NOT NULL,

    -- Top keywords as JSON array: [{"token": "word1", "count": 3}, ...]
    top_keywords TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analyses_created ON analyses(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_analyses_hash ON analyses(batch_hash);
`
