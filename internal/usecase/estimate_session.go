package usecase

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"psaops/internal/domain/entities"
	"psaops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IEstimateEditor exposes the line-item grid operations: row field edits,
// weekly hours, fill, delete, and the authoritative detail/totals views.
type IEstimateEditor interface {
	UpdateRowField(ctx context.Context, estimateID, rowKey string, change entities.LineItemPatch) (RowSnapshot, error)
	SetRowHours(ctx context.Context, estimateID, rowKey, weekKey string, hours float64) (RowSnapshot, error)
	FillRowHours(ctx context.Context, estimateID, rowKey string, hours float64) (RowSnapshot, error)
	DeleteRow(ctx context.Context, estimateID, rowKey string) error
	Detail(ctx context.Context, estimateID string) (EditorDetail, error)
	Totals(ctx context.Context, estimateID string) (Totals, error)
}

// EditorDetail is the reconciled view of an open estimate grid.
type EditorDetail struct {
	Estimate          entities.Estimate
	InvoiceCenterName string
	Rows              []RowSnapshot
	Totals            Totals
}

// EstimateSession owns the row controllers for one open estimate. It builds
// them from the authoritative detail plus the durable row-identity
// bookkeeping, and re-reconciles whenever a fresh snapshot is fetched, so a
// record is never rendered as both a draft row and a resolved row.
type EstimateSession struct {
	mu          sync.Mutex
	estimate    entities.Estimate
	rows        map[string]*RowController
	order       []string
	centerNames map[string]string

	repo          interfaces.ILineItemRepository
	refdata       interfaces.IReferenceDataRepository
	registry      *RowIdentityRegistry
	fx            CurrencyTable
	hoursDebounce time.Duration
}

func NewEstimateSession(
	ctx context.Context,
	estimateID string,
	repo interfaces.ILineItemRepository,
	refdata interfaces.IReferenceDataRepository,
	idstore interfaces.IRowIdentityStore,
	hoursDebounce time.Duration,
) (*EstimateSession, error) {
	detail, err := repo.GetEstimateDetail(ctx, estimateID)
	if err != nil {
		return nil, err
	}
	if detail.Estimate.ID == "" {
		return nil, ErrEstimateNotFound
	}

	rates, err := refdata.ListCurrencyRates(ctx)
	if err != nil {
		return nil, err
	}

	// Center names are display data only; a failed fetch degrades the label,
	// not the grid.
	centerNames := map[string]string{}
	if centers, err := refdata.ListDeliveryCenters(ctx); err != nil {
		log.Printf("[rows][session] delivery centers fetch failed estimate=%s err=%v", estimateID, err)
	} else {
		for _, dc := range centers {
			centerNames[dc.ID] = dc.Name
		}
	}

	registry := NewRowIdentityRegistry(idstore, estimateID)
	if err := registry.Load(ctx); err != nil {
		return nil, err
	}

	s := &EstimateSession{
		estimate:      detail.Estimate,
		rows:          map[string]*RowController{},
		centerNames:   centerNames,
		repo:          repo,
		refdata:       refdata,
		registry:      registry,
		fx:            NewCurrencyTable(rates),
		hoursDebounce: hoursDebounce,
	}
	s.reconcile(ctx, detail)
	return s, nil
}

// Row returns the controller for a row slot, creating an empty one for a
// slot the session has not seen yet.
func (s *EstimateSession) Row(rowKey string) *RowController {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rowLocked(rowKey)
}

func (s *EstimateSession) rowLocked(rowKey string) *RowController {
	if c, ok := s.rows[rowKey]; ok {
		return c
	}
	c := NewRowController(rowKey, s.estimate, s.repo, s.refdata, s.registry, s.fx, s.hoursDebounce)
	s.rows[rowKey] = c
	s.order = append(s.order, rowKey)
	return c
}

// reconcile applies a fresh authoritative snapshot: prunes stale registry
// ids, lets every controller judge its remembered id against the list, and
// materializes rows for persisted records the session does not hold yet.
func (s *EstimateSession) reconcile(ctx context.Context, detail entities.EstimateDetail) {
	authoritative := make(map[string]entities.LineItem, len(detail.LineItems))
	live := make(map[string]bool, len(detail.LineItems))
	for _, it := range detail.LineItems {
		authoritative[it.ID] = it
		live[it.ID] = true
	}

	s.registry.Prune(ctx, live)

	s.mu.Lock()
	s.estimate = detail.Estimate
	controllers := make([]*RowController, 0, len(s.rows))
	for _, key := range s.order {
		controllers = append(controllers, s.rows[key])
	}
	s.mu.Unlock()

	for _, c := range controllers {
		if clearedID := c.Reconcile(authoritative); clearedID != "" {
			if err := s.registry.Clear(ctx, c.rowKey); err != nil {
				log.Printf("[rows][session] registry clear failed estimate=%s row=%s err=%v", s.estimate.ID, c.rowKey, err)
			}
		}
	}

	// Persisted records with no controller yet get a slot: either the one
	// the registry remembers (grid restored after a reload) or a new one
	// (record created elsewhere).
	for _, it := range sortedItems(detail.LineItems) {
		rowKey, ok := s.registry.RowKeyFor(it.ID)
		if !ok {
			rowKey = uuid.NewString()
			if err := s.registry.Set(ctx, rowKey, it.ID); err != nil {
				log.Printf("[rows][session] registry set failed estimate=%s row=%s err=%v", s.estimate.ID, rowKey, err)
			}
		}
		s.mu.Lock()
		c, exists := s.rows[rowKey]
		if !exists {
			c = s.rowLocked(rowKey)
		}
		s.mu.Unlock()
		if !exists {
			c.Seed(it)
		}
	}
}

// refetchIfAsked performs the reconciling refetch a controller requested
// after an unknown-outcome save. Best effort: a failed refetch only logs.
func (s *EstimateSession) refetchIfAsked(ctx context.Context, c *RowController) {
	if !c.NeedsRefetch() {
		return
	}
	detail, err := s.repo.GetEstimateDetail(ctx, s.estimate.ID)
	if err != nil || detail.Estimate.ID == "" {
		log.Printf("[rows][session] reconciling refetch failed estimate=%s err=%v", s.estimate.ID, err)
		return
	}
	s.reconcile(ctx, detail)
}

// Snapshot lists the rows in slot order with estimate-wide totals.
func (s *EstimateSession) Snapshot() EditorDetail {
	s.mu.Lock()
	estimate := s.estimate
	controllers := make([]*RowController, 0, len(s.rows))
	for _, key := range s.order {
		controllers = append(controllers, s.rows[key])
	}
	s.mu.Unlock()

	rows := make([]RowSnapshot, 0, len(controllers))
	totals := make([]Totals, 0, len(controllers))
	for _, c := range controllers {
		snap := c.Snapshot()
		if snap.Phase == RowEmpty {
			continue
		}
		rows = append(rows, snap)
		totals = append(totals, snap.Totals)
	}
	return EditorDetail{
		Estimate:          estimate,
		InvoiceCenterName: s.centerNames[estimate.InvoiceCenterID],
		Rows:              rows,
		Totals:            CombineTotals(totals),
	}
}

func sortedItems(items []entities.LineItem) []entities.LineItem {
	out := make([]entities.LineItem, len(items))
	copy(out, items)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

const defaultHoursDebounce = 400 * time.Millisecond

// SessionManager hands out one EstimateSession per open estimate and
// implements IEstimateEditor on top of them.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*EstimateSession

	repo          interfaces.ILineItemRepository
	refdata       interfaces.IReferenceDataRepository
	idstore       interfaces.IRowIdentityStore
	hoursDebounce time.Duration
}

var _ IEstimateEditor = (*SessionManager)(nil)

func NewSessionManager(
	repo interfaces.ILineItemRepository,
	refdata interfaces.IReferenceDataRepository,
	idstore interfaces.IRowIdentityStore,
) *SessionManager {
	return &SessionManager{
		sessions:      map[string]*EstimateSession{},
		repo:          repo,
		refdata:       refdata,
		idstore:       idstore,
		hoursDebounce: defaultHoursDebounce,
	}
}

// SetHoursDebounce overrides the weekly-hours dispatch delay. Zero flushes
// synchronously.
func (m *SessionManager) SetHoursDebounce(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hoursDebounce = d
}

func (m *SessionManager) session(ctx context.Context, estimateID string) (*EstimateSession, error) {
	m.mu.Lock()
	if s, ok := m.sessions[estimateID]; ok {
		m.mu.Unlock()
		return s, nil
	}
	debounce := m.hoursDebounce
	m.mu.Unlock()

	s, err := NewEstimateSession(ctx, estimateID, m.repo, m.refdata, m.idstore, debounce)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[estimateID]; ok {
		return existing, nil
	}
	m.sessions[estimateID] = s
	return s, nil
}

func (m *SessionManager) UpdateRowField(ctx context.Context, estimateID, rowKey string, change entities.LineItemPatch) (RowSnapshot, error) {
	s, err := m.session(ctx, estimateID)
	if err != nil {
		return RowSnapshot{}, err
	}
	c := s.Row(rowKey)
	snap, err := c.SetField(ctx, change)
	s.refetchIfAsked(ctx, c)
	return snap, err
}

func (m *SessionManager) SetRowHours(ctx context.Context, estimateID, rowKey, weekKey string, hours float64) (RowSnapshot, error) {
	s, err := m.session(ctx, estimateID)
	if err != nil {
		return RowSnapshot{}, err
	}
	c := s.Row(rowKey)
	snap, err := c.SetHours(ctx, weekKey, hours)
	s.refetchIfAsked(ctx, c)
	return snap, err
}

func (m *SessionManager) FillRowHours(ctx context.Context, estimateID, rowKey string, hours float64) (RowSnapshot, error) {
	s, err := m.session(ctx, estimateID)
	if err != nil {
		return RowSnapshot{}, err
	}
	c := s.Row(rowKey)
	snap, err := c.FillHours(ctx, hours)
	s.refetchIfAsked(ctx, c)
	return snap, err
}

func (m *SessionManager) DeleteRow(ctx context.Context, estimateID, rowKey string) error {
	s, err := m.session(ctx, estimateID)
	if err != nil {
		return err
	}
	return s.Row(rowKey).Delete(ctx)
}

func (m *SessionManager) Detail(ctx context.Context, estimateID string) (EditorDetail, error) {
	s, err := m.session(ctx, estimateID)
	if err != nil {
		return EditorDetail{}, err
	}
	detail, err := s.repo.GetEstimateDetail(ctx, estimateID)
	if err != nil {
		return EditorDetail{}, err
	}
	if detail.Estimate.ID == "" {
		return EditorDetail{}, ErrEstimateNotFound
	}
	s.reconcile(ctx, detail)
	return s.Snapshot(), nil
}

func (m *SessionManager) Totals(ctx context.Context, estimateID string) (Totals, error) {
	s, err := m.session(ctx, estimateID)
	if err != nil {
		return Totals{}, err
	}
	return s.Snapshot().Totals, nil
}
