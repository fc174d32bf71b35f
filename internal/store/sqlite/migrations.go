package sqlite

const schema = `
CREATE TABLE IF NOT EXISTS emails (
    id          INTEGER PRIMARY KEY,
    sender      TEXT NOT NULL,
    subject     TEXT NOT NULL,
    body        TEXT NOT NULL,
    timestamp   TEXT,
    folder      TEXT NOT NULL DEFAULT 'inbox',
    read        BOOLEAN NOT NULL DEFAULT FALSE,
    priority    TEXT NOT NULL DEFAULT 'normal',
    category    TEXT NOT NULL DEFAULT '',
    position    INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_emails_folder ON emails(folder);
CREATE INDEX IF NOT EXISTS idx_emails_read ON emails(read);
CREATE INDEX IF NOT EXISTS idx_emails_position ON emails(position);
`
