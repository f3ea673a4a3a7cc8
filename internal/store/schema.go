package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS monthly_snapshots (
    month                INTEGER PRIMARY KEY,
    net_worth            INTEGER NOT NULL,
    cash                 INTEGER NOT NULL,
    savings              INTEGER NOT NULL,
    debt                 INTEGER NOT NULL,
    credit_score         INTEGER NOT NULL,
    closed_at            TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS quiz_days (
    date                 TEXT PRIMARY KEY,
    score                INTEGER NOT NULL,
    time_secs            INTEGER NOT NULL,
    correct              INTEGER NOT NULL,
    total                INTEGER NOT NULL,
    finished_progress    INTEGER NOT NULL DEFAULT 0,
    recorded_at          TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS quiz_answers (
    date                 TEXT NOT NULL REFERENCES quiz_days(date) ON DELETE CASCADE,
    question_id          TEXT NOT NULL,
    category             TEXT NOT NULL,
    correct              INTEGER NOT NULL,
    hint_used            INTEGER NOT NULL,
    user_answer          TEXT,
    elapsed_secs         REAL,
    PRIMARY KEY (date, question_id)
);

CREATE INDEX IF NOT EXISTS idx_quiz_answers_category ON quiz_answers(category);
`
