package postgres

import (
	"context"
	"fmt"
	"net"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Repuestos-api/pkg/config"
)

// NewPool crea el pool PostgreSQL a partir de DATABASE_URL o de DB_HOST, DB_PORT, etc.
// El pool se construye una vez en main y se inyecta; no hay estado global.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	// Preferir IPv4 en el dial: en contenedores sin IPv6 el host puede resolver primero a AAAA.
	poolConfig.ConnConfig.DialFunc = dialPreferIPv4

	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// NUMERIC (precio, peso, medidas) <-> shopspring/decimal en todas las conexiones del pool.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, wrapErr("ping DB", err)
	}
	return pool, nil
}

func dialPreferIPv4(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: 10 * time.Second, KeepAlive: 5 * time.Minute}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return dialer.DialContext(ctx, network, addr)
	}
	if ip := lookupIPv4(ctx, host); ip != "" {
		return dialer.DialContext(ctx, "tcp4", net.JoinHostPort(ip, port))
	}
	return dialer.DialContext(ctx, network, addr)
}

// lookupIPv4 devuelve "" si host no tiene dirección IPv4 (o es una IPv6 literal).
func lookupIPv4(ctx context.Context, host string) string {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host
		}
		return ""
	}
	ips, err := net.DefaultResolver.LookupIP(ctx, "ip4", host)
	if err != nil || len(ips) == 0 {
		return ""
	}
	return ips[0].String()
}
