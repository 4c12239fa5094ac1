// Package memory implementa los puertos de persistencia en memoria.
// Lo usan los tests y el modo --dry-run de cmd/import_parts.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/Repuestos-api/internal/application/inventory"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

// Store estado completo en memoria. Run serializa las transacciones y restaura el estado si fn falla.
type Store struct {
	mu       sync.Mutex
	parts    map[string]*entity.SparePart
	history  []*entity.PartHistory
	fields   []*entity.FieldHistory
	settings *entity.AppSettings
	seq      int64
	now      func() time.Time
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{parts: make(map[string]*entity.SparePart), now: time.Now}
}

// SetClock fija el reloj usado para CreatedAt/UpdatedAt (tests).
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Parts repositorio fuera de transacción.
func (s *Store) Parts() repository.SparePartRepository { return &partRepo{s: s} }

// History repositorio del historial fuera de transacción.
func (s *Store) History() repository.PartHistoryRepository { return &historyRepo{s: s} }

// FieldHistory repositorio del historial de campos fuera de transacción.
func (s *Store) FieldHistory() repository.FieldHistoryRepository { return &fieldRepo{s: s} }

// Settings repositorio de configuración.
func (s *Store) Settings() repository.SettingsRepository { return &settingsRepo{s: s} }

// Run ejecuta fn con repos atados a la "transacción"; si fn devuelve error se descartan sus cambios.
func (s *Store) Run(ctx context.Context, fn func(
	partRepo repository.SparePartRepository,
	historyRepo repository.PartHistoryRepository,
	fieldRepo repository.FieldHistoryRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}

	snapParts := make(map[string]*entity.SparePart, len(s.parts))
	for k, v := range s.parts {
		snapParts[k] = v
	}
	snapHistory, snapFields, snapSeq := len(s.history), len(s.fields), s.seq

	if err := fn(&partRepo{s: s, inTx: true}, &historyRepo{s: s, inTx: true}, &fieldRepo{s: s, inTx: true}); err != nil {
		s.parts = snapParts
		s.history = s.history[:snapHistory]
		s.fields = s.fields[:snapFields]
		s.seq = snapSeq
		return err
	}
	return nil
}

func (s *Store) lock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// ─── SparePartRepository ──────────────────────────────────────────────────────

type partRepo struct {
	s    *Store
	inTx bool
}

func (r *partRepo) List(_ context.Context) ([]*entity.SparePart, error) {
	defer r.s.lock(r.inTx)()
	out := make([]*entity.SparePart, 0, len(r.s.parts))
	for _, p := range r.s.parts {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InternalArticleNumber < out[j].InternalArticleNumber })
	return out, nil
}

func (r *partRepo) ListByArticleNumbers(_ context.Context, articleNumbers []string) ([]*entity.SparePart, error) {
	defer r.s.lock(r.inTx)()
	out := make([]*entity.SparePart, 0, len(articleNumbers))
	seen := make(map[string]bool, len(articleNumbers))
	for _, n := range articleNumbers {
		if seen[n] {
			continue
		}
		seen[n] = true
		if p, ok := r.s.parts[n]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InternalArticleNumber < out[j].InternalArticleNumber })
	return out, nil
}

func (r *partRepo) GetByArticleNumber(_ context.Context, articleNumber string) (*entity.SparePart, error) {
	defer r.s.lock(r.inTx)()
	p, ok := r.s.parts[articleNumber]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *partRepo) GetForUpdate(ctx context.Context, articleNumber string) (*entity.SparePart, error) {
	return r.GetByArticleNumber(ctx, articleNumber)
}

func (r *partRepo) Upsert(_ context.Context, part *entity.SparePart) error {
	defer r.s.lock(r.inTx)()
	now := r.s.now()
	cp := *part
	if existing, ok := r.s.parts[part.InternalArticleNumber]; ok {
		cp.Quantity = existing.Quantity
		cp.CreatedAt = existing.CreatedAt
	} else {
		cp.Quantity = 0
		cp.CreatedAt = now
	}
	cp.UpdatedAt = now
	r.s.parts[part.InternalArticleNumber] = &cp
	return nil
}

func (r *partRepo) UpdateQuantity(_ context.Context, articleNumber string, quantity int) error {
	defer r.s.lock(r.inTx)()
	p, ok := r.s.parts[articleNumber]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *p
	cp.Quantity = quantity
	cp.UpdatedAt = r.s.now()
	r.s.parts[articleNumber] = &cp
	return nil
}

func (r *partRepo) Delete(_ context.Context, articleNumber string) error {
	defer r.s.lock(r.inTx)()
	if _, ok := r.s.parts[articleNumber]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.parts, articleNumber)
	return nil
}

// ─── Historiales ──────────────────────────────────────────────────────────────

type historyRepo struct {
	s    *Store
	inTx bool
}

func (r *historyRepo) Append(_ context.Context, entry *entity.PartHistory) error {
	defer r.s.lock(r.inTx)()
	for _, h := range r.s.history {
		if h.ID == entry.ID {
			return fmt.Errorf("insert part history %s: %w", entry.ID, domain.ErrDuplicate)
		}
	}
	r.s.seq++
	entry.Seq = r.s.seq
	cp := *entry
	r.s.history = append(r.s.history, &cp)
	return nil
}

func (r *historyRepo) ListByPart(_ context.Context, partNumber string) ([]*entity.PartHistory, error) {
	defer r.s.lock(r.inTx)()
	out := make([]*entity.PartHistory, 0)
	for _, h := range r.s.history {
		if h.PartNumber == partNumber {
			cp := *h
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Seq > out[j].Seq
	})
	return out, nil
}

type fieldRepo struct {
	s    *Store
	inTx bool
}

func (r *fieldRepo) Append(_ context.Context, entry *entity.FieldHistory) error {
	defer r.s.lock(r.inTx)()
	r.s.seq++
	entry.Seq = r.s.seq
	cp := *entry
	r.s.fields = append(r.s.fields, &cp)
	return nil
}

func (r *fieldRepo) ListByPart(_ context.Context, partNumber string) ([]*entity.FieldHistory, error) {
	defer r.s.lock(r.inTx)()
	out := make([]*entity.FieldHistory, 0)
	for _, h := range r.s.fields {
		if h.PartNumber == partNumber {
			cp := *h
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Seq > out[j].Seq
	})
	return out, nil
}

// ─── SettingsRepository ───────────────────────────────────────────────────────

type settingsRepo struct {
	s *Store
}

func (r *settingsRepo) Get(_ context.Context) (*entity.AppSettings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.settings == nil {
		return nil, nil
	}
	cp := *r.s.settings
	return &cp, nil
}

func (r *settingsRepo) Upsert(_ context.Context, settings *entity.AppSettings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *settings
	cp.LogoURL = strings.TrimSpace(cp.LogoURL)
	cp.UpdatedAt = r.s.now()
	r.s.settings = &cp
	return nil
}
