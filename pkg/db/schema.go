package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- One row per computed report
CREATE TABLE IF NOT EXISTS analyses (
    analysis_id INTEGER PRIMARY KEY AUTOINCREMENT,
    request_id TEXT,
    source TEXT,
    scope TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,

    word_count INTEGER NOT NULL DEFAULT 0,
    char_count INTEGER NOT NULL DEFAULT 0,
    sentence_count INTEGER NOT NULL DEFAULT 0,
    paragraph_count INTEGER NOT NULL DEFAULT 0,
    syllable_count INTEGER NOT NULL DEFAULT 0,

    flesch_score REAL,            -- NULL when readability is not applicable
    grade_label TEXT NOT NULL,
    reading_time_seconds INTEGER NOT NULL DEFAULT 0,
    speaking_time_seconds INTEGER NOT NULL DEFAULT 0,
    language TEXT,

    text_bytes INTEGER NOT NULL DEFAULT 0,
    report_json TEXT NOT NULL     -- full models.Report
);

CREATE INDEX IF NOT EXISTS idx_analyses_created ON analyses(created_at);
CREATE INDEX IF NOT EXISTS idx_analyses_source ON analyses(source);

-- Ranked keywords of each report
CREATE TABLE IF NOT EXISTS analysis_keywords (
    analysis_id INTEGER NOT NULL,
    rank INTEGER NOT NULL,
    term TEXT NOT NULL,
    occurrences INTEGER NOT NULL,
    density_percent REAL NOT NULL,
    PRIMARY KEY (analysis_id, rank),
    FOREIGN KEY (analysis_id) REFERENCES analyses(analysis_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_analysis_keywords_term ON analysis_keywords(term);
`
