package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-locker-sync/models"
)

const (
	sourcesTable      = "appstore_sources"
	deviceLockerTable = "device_locker"
)

var sourceColumns = []string{"id", "url", "title", "enabled", "priority"}

var deviceLockerColumns = []string{"uuid", "appstore_id", "name", "version", "source"}

func buildGetEnabledSourcesQuery() (string, []any, error) {
	return sq.Select(sourceColumns...).
		From(sourcesTable).
		Where(sq.Eq{"enabled": true}).
		OrderBy("priority DESC", "id ASC").
		ToSql()
}

func buildGetSourceQuery(id int64) (string, []any, error) {
	return sq.Select(sourceColumns...).
		From(sourcesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildGetSourceByURLQuery(url string) (string, []any, error) {
	return sq.Select(sourceColumns...).
		From(sourcesTable).
		Where(sq.Eq{"url": url}).
		ToSql()
}

func buildInsertSourceQuery(src models.StoreSource, ignoreExisting bool) (string, []any, error) {
	q := sq.Insert(sourcesTable).
		Columns("url", "title", "enabled", "priority").
		Values(src.URL, src.Title, src.Enabled, src.Priority)
	if ignoreExisting {
		q = q.Suffix("ON CONFLICT(url) DO NOTHING")
	}
	return q.ToSql()
}

func buildSetEnabledQuery(id int64, enabled bool) (string, []any, error) {
	return sq.Update(sourcesTable).
		Set("enabled", enabled).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpsertDeviceAppQuery(app models.ResolvedApp, now time.Time) (string, []any, error) {
	return sq.Insert(deviceLockerTable).
		Columns("uuid", "appstore_id", "name", "version", "source", "synced", "updated_at").
		Values(app.UUID.String(), app.ID, app.Name, app.Version, app.Source, false, now).
		Suffix(`ON CONFLICT(uuid) DO UPDATE SET
			appstore_id = excluded.appstore_id,
			name = excluded.name,
			version = excluded.version,
			source = excluded.source,
			synced = 0,
			updated_at = excluded.updated_at`).
		ToSql()
}

func buildListDeviceUUIDsQuery() (string, []any, error) {
	return sq.Select("uuid").
		From(deviceLockerTable).
		OrderBy("uuid ASC").
		ToSql()
}

func buildListPendingQuery() (string, []any, error) {
	return sq.Select(deviceLockerColumns...).
		From(deviceLockerTable).
		Where(sq.Eq{"synced": false}).
		OrderBy("updated_at ASC", "uuid ASC").
		ToSql()
}

func buildMarkSyncedQuery(ids []uuid.UUID) (string, []any, error) {
	if len(ids) == 0 {
		return "", nil, fmt.Errorf("%w: no uuids to mark", ErrBuildingSQLQuery)
	}
	return sq.Update(deviceLockerTable).
		Set("synced", true).
		Where(sq.Eq{"uuid": uuidStrings(ids)}).
		ToSql()
}

func buildIsSyncedQuery(id uuid.UUID) (string, []any, error) {
	return sq.Select("synced").
		From(deviceLockerTable).
		Where(sq.Eq{"uuid": id.String()}).
		ToSql()
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
