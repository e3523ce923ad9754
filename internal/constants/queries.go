package constants

// Queries use ? placeholders; repositories pass them through sqlx Rebind so the
// same text runs on Postgres and SQLite.
const (
	GetApiKeyByHash = `
	SELECT id, key_hash, user_id, label, status, created_at, last_used_at
	FROM api_keys WHERE key_hash = ?
	`

	InsertApiKey = `
	INSERT INTO api_keys (id, key_hash, user_id, label, status, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	TouchApiKey = `
	UPDATE api_keys SET last_used_at = ? WHERE id = ?
	`

	// Report window params: start, end, territoryID, territoryID.
	ReportDayCounts = `
	SELECT COUNT(*) AS total,
	       COALESCE(SUM(CASE WHEN status = 'COMPLETED' THEN 1 ELSE 0 END), 0) AS completed
	FROM preaching_days
	WHERE date >= ? AND date <= ? AND (? = '' OR territory_id = ?)
	`

	ReportParticipationCount = `
	SELECT COUNT(*)
	FROM participations p
	JOIN preaching_days d ON d.id = p.preaching_day_id
	WHERE d.date >= ? AND d.date <= ? AND (? = '' OR d.territory_id = ?)
	`

	ReportByTerritory = `
	SELECT t.id AS territory_id,
	       t.name AS territory_name,
	       COUNT(d.id) AS activities,
	       COALESCE(SUM(CASE WHEN d.status = 'COMPLETED' THEN 1 ELSE 0 END), 0) AS completed
	FROM preaching_days d
	JOIN territories t ON t.id = d.territory_id
	WHERE d.date >= ? AND d.date <= ? AND (? = '' OR d.territory_id = ?)
	GROUP BY t.id, t.name
	ORDER BY activities DESC, t.name
	`

	// Params: the report window twice, participations first then leadership.
	ReportByUser = `
	SELECT s.user_id, s.name, s.participations, s.leadership FROM (
		SELECT u.id AS user_id,
		       u.name AS name,
		       (SELECT COUNT(*) FROM participations p
		        JOIN preaching_days d ON d.id = p.preaching_day_id
		        WHERE p.user_id = u.id
		          AND d.date >= ? AND d.date <= ? AND (? = '' OR d.territory_id = ?)) AS participations,
		       (SELECT COUNT(*) FROM preaching_days d
		        WHERE d.leader_id = u.id
		          AND d.date >= ? AND d.date <= ? AND (? = '' OR d.territory_id = ?)) AS leadership
		FROM users u
	) s
	WHERE s.participations > 0 OR s.leadership > 0
	ORDER BY s.participations DESC, s.name
	`
)
