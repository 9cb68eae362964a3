package database

import (
	"embed"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Migration pairs an up and a down SQL script under a numeric version.
type Migration struct {
	Version    int
	Name       string
	UpScript   string
	DownScript string
}

func (m *Migration) String() string {
	return fmt.Sprintf("%06d_%s", m.Version, m.Name)
}

//go:embed migrations/*.sql
var migrationFS embed.FS

var migrations = mustLoadMigrations()

func mustLoadMigrations() []Migration {
	ms, err := loadMigrations(migrationFS)
	if err != nil {
		panic(fmt.Sprintf("embedded migrations: %v", err))
	}
	return ms
}

// loadMigrations reads every <version>_<name>.up.sql file and its matching
// .down.sql counterpart, sorted by version.
func loadMigrations(efs embed.FS) ([]Migration, error) {
	entries, err := efs.ReadDir("migrations")
	if err != nil {
		return nil, err
	}

	var ms []Migration
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".up.sql") {
			continue
		}

		base := strings.TrimSuffix(name, ".up.sql")
		versionPart, migrationName, ok := strings.Cut(base, "_")
		if !ok {
			return nil, fmt.Errorf("%s: want <version>_<name>.up.sql", name)
		}
		version, err := strconv.Atoi(versionPart)
		if err != nil {
			return nil, fmt.Errorf("%s: bad version %q", name, versionPart)
		}

		up, err := efs.ReadFile("migrations/" + name)
		if err != nil {
			return nil, err
		}
		down, err := efs.ReadFile("migrations/" + base + ".down.sql")
		if err != nil {
			return nil, fmt.Errorf("%s has no down script: %w", name, err)
		}

		ms = append(ms, Migration{
			Version:    version,
			Name:       migrationName,
			UpScript:   string(up),
			DownScript: string(down),
		})
	}

	sort.Slice(ms, func(i, j int) bool { return ms[i].Version < ms[j].Version })
	return ms, nil
}

// GetMigrations returns every embedded migration in version order.
func GetMigrations() []Migration {
	return migrations
}

// GetMigrationByVersion returns the migration with the given version, or nil.
func GetMigrationByVersion(version int) *Migration {
	for i := range migrations {
		if migrations[i].Version == version {
			return &migrations[i]
		}
	}
	return nil
}
