package db

import (
	"time"

	"gorm.io/gorm"

	"field-ministry/campo/internal/metrics"
)

const startedAtKey = "campo:started_at"

// RegisterMetricsCallbacks times every GORM statement into the DB metrics.
func RegisterMetricsCallbacks(gdb *gorm.DB, metricsReg *metrics.MetricsRegistry) error {
	before := func(tx *gorm.DB) {
		tx.InstanceSet(startedAtKey, time.Now())
	}
	after := func(queryType string) func(*gorm.DB) {
		return func(tx *gorm.DB) {
			v, ok := tx.InstanceGet(startedAtKey)
			if !ok {
				return
			}
			started, ok := v.(time.Time)
			if !ok {
				return
			}
			metricsReg.DBQueriesTotal.WithLabelValues(queryType, tx.Statement.Table).Inc()
			metricsReg.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(started).Seconds())
		}
	}

	cb := gdb.Callback()
	steps := []struct {
		queryType string
		register  func(name string, before, after func(*gorm.DB)) error
	}{
		{"create", func(name string, b, a func(*gorm.DB)) error {
			if err := cb.Create().Before("gorm:create").Register(name+":before", b); err != nil {
				return err
			}
			return cb.Create().After("gorm:create").Register(name+":after", a)
		}},
		{"select", func(name string, b, a func(*gorm.DB)) error {
			if err := cb.Query().Before("gorm:query").Register(name+":before", b); err != nil {
				return err
			}
			return cb.Query().After("gorm:query").Register(name+":after", a)
		}},
		{"update", func(name string, b, a func(*gorm.DB)) error {
			if err := cb.Update().Before("gorm:update").Register(name+":before", b); err != nil {
				return err
			}
			return cb.Update().After("gorm:update").Register(name+":after", a)
		}},
		{"delete", func(name string, b, a func(*gorm.DB)) error {
			if err := cb.Delete().Before("gorm:delete").Register(name+":before", b); err != nil {
				return err
			}
			return cb.Delete().After("gorm:delete").Register(name+":after", a)
		}},
		{"raw", func(name string, b, a func(*gorm.DB)) error {
			if err := cb.Raw().Before("gorm:raw").Register(name+":before", b); err != nil {
				return err
			}
			return cb.Raw().After("gorm:raw").Register(name+":after", a)
		}},
	}

	for _, s := range steps {
		if err := s.register("metrics:"+s.queryType, before, after(s.queryType)); err != nil {
			return err
		}
	}
	return nil
}
