package store

// Schema DDL for the session database. The position column is the insertion
// order contract: every query orders by it, so List and ItemsByCourse return
// items exactly as they were added.
const createMenuItems = `CREATE TABLE menu_items (
    position INTEGER PRIMARY KEY AUTOINCREMENT,
    item_id TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    course TEXT NOT NULL,
    price INTEGER NOT NULL,
    created_at TEXT NOT NULL
);`
