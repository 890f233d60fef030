//go:build e2e

package dbtest

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB truncates all mutable tables so each subtest starts clean.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `TRUNCATE appointments, operators, workshops RESTART IDENTITY CASCADE`)
	return err
}

// CountAppointmentsByStatus counts rows per status for sweep assertions.
func CountAppointmentsByStatus(pool *pgxpool.Pool, status string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var n int64
	err := pool.QueryRow(ctx, `SELECT count(*) FROM appointments WHERE status = $1`, status).Scan(&n)
	return n, err
}

// ForceSchedule rewrites data_agendada directly, bypassing the create-time
// future-date validation, so sweep fixtures can sit in the past.
func ForceSchedule(pool *pgxpool.Pool, id int64, at time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `UPDATE appointments SET data_agendada = $2 WHERE id = $1`, id, at)
	return err
}

// AppointmentStatus reads a single row's status.
func AppointmentStatus(pool *pgxpool.Pool, id int64) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var status string
	err := pool.QueryRow(ctx, `SELECT status FROM appointments WHERE id = $1`, id).Scan(&status)
	return status, err
}
