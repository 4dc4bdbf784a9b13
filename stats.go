package incmap

type Stats struct {
	Size            int
	Capacity        int
	LoadFactor      float64
	Migrating       bool
	MigratingSize   int
	MigrationCursor uint64
}
