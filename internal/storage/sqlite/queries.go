package sqlite

const schemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id         INTEGER PRIMARY KEY,
	name       TEXT NOT NULL,
	username   TEXT NOT NULL DEFAULT '',
	email      TEXT NOT NULL DEFAULT '',
	phone      TEXT NOT NULL DEFAULT '',
	website    TEXT NOT NULL DEFAULT '',
	company    TEXT NOT NULL DEFAULT '',
	city       TEXT NOT NULL DEFAULT '',
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS favorites (
	user_id    INTEGER PRIMARY KEY,
	created_at TEXT NOT NULL
);
`

const userColumns = `id, name, username, email, phone, website, company, city`

const listUsersSQL = `SELECT ` + userColumns + ` FROM users ORDER BY id`

const countUsersSQL = `SELECT COUNT(*) FROM users`

const upsertUserSQL = `
INSERT INTO users (id, name, username, email, phone, website, company, city, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	name = excluded.name,
	username = excluded.username,
	email = excluded.email,
	phone = excluded.phone,
	website = excluded.website,
	company = excluded.company,
	city = excluded.city,
	updated_at = excluded.updated_at`

const deleteUserSQL = `DELETE FROM users WHERE id = ?`

const listFavoritesSQL = `SELECT user_id FROM favorites ORDER BY user_id`

const insertFavoriteSQL = `INSERT OR IGNORE INTO favorites (user_id, created_at) VALUES (?, ?)`

const deleteFavoriteSQL = `DELETE FROM favorites WHERE user_id = ?`

