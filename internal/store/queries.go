// store/queries.go - Centralized SQL queries
package store

const (
	configTable = `configs`
	groupTable  = `calendar_groups`
	hoursTable  = `hours`
)

// Config queries
const (
	qConfigByPeriod = `SELECT payload FROM ` + configTable + ` WHERE period = ?`

	qConfigUpsert = `INSERT INTO ` + configTable + ` (period, payload) VALUES (?, ?)
		ON CONFLICT(period) DO UPDATE SET payload=excluded.payload, updated_at=CURRENT_TIMESTAMP`
)

// Group queries
const (
	qGroupsAll = `SELECT calendar_id, group_id FROM ` + groupTable

	qGroupUpsert = `INSERT INTO ` + groupTable + ` (calendar_id, group_id) VALUES (?, ?)
		ON CONFLICT(calendar_id) DO UPDATE SET group_id=excluded.group_id`
)

// Hours queries
const (
	qHoursUpsert = `INSERT INTO ` + hoursTable + ` (date, calendar_id, hours) VALUES (?, ?, ?)
		ON CONFLICT(date, calendar_id) DO UPDATE SET hours=excluded.hours`

	qDayTotals = `SELECT date, SUM(hours) FROM ` + hoursTable +
		` WHERE date BETWEEN ? AND ? GROUP BY date ORDER BY date`

	qCalendarTotals = `SELECT h.calendar_id, SUM(h.hours), g.group_id FROM ` + hoursTable + ` h
		LEFT JOIN ` + groupTable + ` g ON g.calendar_id = h.calendar_id
		WHERE h.date BETWEEN ? AND ? GROUP BY h.calendar_id ORDER BY h.calendar_id`
)
