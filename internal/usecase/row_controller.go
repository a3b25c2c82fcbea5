package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"psaops/internal/domain/entities"
	"psaops/internal/usecase/interfaces"
)

var (
	ErrMissingRole      = errors.New("line item requires a role")
	ErrNegativeHours    = errors.New("hours must be zero or positive")
	ErrLineItemNotFound = errors.New("line item not found")
	ErrEstimateNotFound = errors.New("estimate not found")
)

// RowSnapshot is the read-only view of a row handed to the transport layer.
type RowSnapshot struct {
	RowKey       string
	Phase        RowPhase
	LineItemID   string
	Item         entities.LineItem
	Totals       Totals
	ErrorMessage string
}

// RowController owns the create-vs-update decision for a single grid row.
//
// Guarantees:
//   - at most one create call is ever issued for the row; once the durable id
//     is captured every later save is an update against it
//   - a save in flight is a mutual-exclusion region for this row only; edits
//     arriving meanwhile are coalesced and re-dispatched after it settles
//   - a failing payload is fingerprinted so the identical payload is not
//     resubmitted until a field actually changes
//   - a remote record deleted out-of-band resets the row to empty instead of
//     being silently re-submitted
type RowController struct {
	mu sync.Mutex

	estimate entities.Estimate
	rowKey   string

	phase RowPhase
	// draft holds the row's local copy; draft.ID is empty until the first
	// create succeeds.
	draft entities.LineItem
	// patch accumulates field changes since the last successful save; it is
	// the partial payload for updates.
	patch   entities.LineItemPatch
	saving  bool
	pending bool
	// lastAttempt fingerprints the payload of the last failed save.
	lastAttempt  string
	errMsg       string
	needsRefetch bool

	resolver RateResolver
	hours    hoursDispatcher

	repo     interfaces.ILineItemRepository
	refdata  interfaces.IReferenceDataRepository
	registry *RowIdentityRegistry
	fx       CurrencyTable
}

func NewRowController(
	rowKey string,
	estimate entities.Estimate,
	repo interfaces.ILineItemRepository,
	refdata interfaces.IReferenceDataRepository,
	registry *RowIdentityRegistry,
	fx CurrencyTable,
	hoursDebounce time.Duration,
) *RowController {
	c := &RowController{
		estimate: estimate,
		rowKey:   rowKey,
		phase:    RowEmpty,
		repo:     repo,
		refdata:  refdata,
		registry: registry,
		fx:       fx,
	}
	c.hours.delay = hoursDebounce
	c.draft = c.blankDraft()
	return c
}

// blankDraft seeds a fresh draft with the fields every row inherits from the
// estimate: the invoice center, the presentation currency and the date range.
func (c *RowController) blankDraft() entities.LineItem {
	return entities.LineItem{
		EstimateID:       c.estimate.ID,
		DeliveryCenterID: c.estimate.InvoiceCenterID,
		Currency:         c.estimate.Currency,
		StartDate:        c.estimate.StartDate,
		EndDate:          c.estimate.EndDate,
		Billable:         true,
		CustomHours:      map[string]float64{},
	}
}

// SetField applies one field-changed event to the row: updates the draft,
// re-resolves dependent rates when the role or employee selection moved, and
// drives the persistence state machine.
func (c *RowController) SetField(ctx context.Context, change entities.LineItemPatch) (RowSnapshot, error) {
	if change.IsZero() {
		return c.Snapshot(), nil
	}

	c.mu.Lock()
	if c.phase == RowEmpty {
		c.phase = RowDraft
	}
	selectionMoved := c.applyChangeLocked(change)

	// Clearing the last meaningful field before the row was ever persisted
	// discards the draft entirely.
	if c.draft.ID == "" && c.draftDiscardableLocked() {
		c.resetLocked()
		c.mu.Unlock()
		return c.Snapshot(), nil
	}
	roleID := c.draft.RoleID
	employeeID := c.draft.EmployeeID
	c.mu.Unlock()

	if selectionMoved && roleID != "" {
		c.resolveRates(ctx, roleID, employeeID)
	}

	c.save(ctx)
	return c.Snapshot(), nil
}

// applyChangeLocked merges the change into the draft and the pending patch.
// It reports whether the role or employee selection changed, which is what
// triggers rate re-resolution.
func (c *RowController) applyChangeLocked(change entities.LineItemPatch) bool {
	moved := false
	if change.RoleID != nil && *change.RoleID != c.draft.RoleID {
		c.draft.RoleID = *change.RoleID
		c.patch.RoleID = change.RoleID
		moved = true
	}
	if change.EmployeeID != nil && *change.EmployeeID != c.draft.EmployeeID {
		c.draft.EmployeeID = *change.EmployeeID
		c.patch.EmployeeID = change.EmployeeID
		moved = true
	}
	if change.Cost != nil {
		c.draft.Cost = *change.Cost
		c.patch.Cost = change.Cost
	}
	if change.Rate != nil {
		c.draft.Rate = *change.Rate
		c.patch.Rate = change.Rate
	}
	if change.StartDate != nil {
		c.draft.StartDate = *change.StartDate
		c.patch.StartDate = change.StartDate
	}
	if change.EndDate != nil {
		c.draft.EndDate = *change.EndDate
		c.patch.EndDate = change.EndDate
	}
	if change.Billable != nil {
		c.draft.Billable = *change.Billable
		c.patch.Billable = change.Billable
	}
	if change.BillableExpensePercentage != nil {
		c.draft.BillableExpensePercentage = *change.BillableExpensePercentage
		c.patch.BillableExpensePercentage = change.BillableExpensePercentage
	}
	if change.DayNotes != nil {
		c.draft.DayNotes = *change.DayNotes
		c.patch.DayNotes = change.DayNotes
	}
	if change.WeekNotes != nil {
		c.draft.WeekNotes = *change.WeekNotes
		c.patch.WeekNotes = change.WeekNotes
	}
	return moved
}

func (c *RowController) draftDiscardableLocked() bool {
	if c.draft.RoleID != "" || c.draft.EmployeeID != "" {
		return false
	}
	for _, h := range c.draft.CustomHours {
		if h != 0 {
			return false
		}
	}
	return true
}

// resolveRates fetches the selected role (and employee) and applies the
// resolved cost/rate to the draft. Fetches settle without the row lock held;
// the resolver's id comparison discards results that went stale while the
// fetch was in flight.
func (c *RowController) resolveRates(ctx context.Context, roleID, employeeID string) {
	role, err := c.refdata.GetRole(ctx, roleID)
	if err != nil {
		log.Printf("[rows][controller] role fetch failed row=%s role=%s err=%v", c.rowKey, roleID, err)
		return
	}
	var employee *entities.Employee
	if employeeID != "" {
		emp, err := c.refdata.GetEmployee(ctx, employeeID)
		if err != nil {
			log.Printf("[rows][controller] employee fetch failed row=%s employee=%s err=%v", c.rowKey, employeeID, err)
			return
		}
		if emp.ID != "" {
			employee = &emp
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	quote, ok := c.resolver.Resolve(ResolveInput{
		Role:               role,
		Employee:           employee,
		SelectedRoleID:     c.draft.RoleID,
		SelectedEmployeeID: c.draft.EmployeeID,
		DeliveryCenterID:   c.draft.DeliveryCenterID,
		TargetCurrency:     c.draft.Currency,
	}, c.fx)
	if !ok {
		return
	}
	c.draft.Rate = quote.Rate
	c.draft.Cost = quote.Cost
	c.patch.Rate = &quote.Rate
	c.patch.Cost = &quote.Cost
}

// save runs the persistence state machine until the row is settled. Only one
// save loop runs per row; callers that find one in flight mark the row
// pending and return, and the running loop re-evaluates before exiting.
func (c *RowController) save(ctx context.Context) {
	c.mu.Lock()
	if c.saving {
		c.pending = true
		c.mu.Unlock()
		return
	}
	c.saving = true

	for {
		if c.draft.RoleID == "" {
			// Validation failure resolves locally; no remote call is made.
			break
		}

		creating := c.draft.ID == ""
		var fp string
		if creating {
			fp = fingerprintCreate(c.draft)
		} else {
			if c.patch.IsZero() {
				break
			}
			fp = fingerprintPatch(c.draft.ID, c.patch)
		}
		if c.phase == RowError && fp == c.lastAttempt {
			// The exact payload already failed; wait for an actual change.
			break
		}

		c.phase = RowSaving
		item := c.cloneDraftLocked()
		patch := c.patch
		// Edits landing while the call is in flight accumulate into a fresh
		// patch; the attempted one is re-merged only if the call fails.
		c.patch = entities.LineItemPatch{}
		c.mu.Unlock()

		var saved entities.LineItem
		var err error
		if creating {
			saved, err = c.repo.Create(ctx, c.estimate.ID, item)
		} else {
			saved, err = c.repo.Update(ctx, c.estimate.ID, item.ID, patch)
		}

		var registryID string
		var registryClear bool
		c.mu.Lock()
		switch {
		case err != nil:
			// Unknown outcome: the call may have succeeded server-side. Keep
			// the local edits and the id, remember the payload, and ask for a
			// reconciling refetch instead of assuming failure.
			log.Printf("[rows][controller] save failed row=%s creating=%t err=%v", c.rowKey, creating, err)
			c.phase = RowError
			c.patch = mergePatches(patch, c.patch)
			c.lastAttempt = fp
			c.errMsg = err.Error()
			c.needsRefetch = true
		case creating && saved.ID != "":
			c.draft.ID = saved.ID
			c.draft.CreatedAt = saved.CreatedAt
			c.draft.UpdatedAt = saved.UpdatedAt
			c.settleLocked()
			registryID = saved.ID
		case creating:
			// The store refused the create without a transport error; the
			// owning estimate is gone.
			log.Printf("[rows][controller] create rejected row=%s estimate=%s", c.rowKey, c.estimate.ID)
			c.phase = RowError
			c.patch = mergePatches(patch, c.patch)
			c.lastAttempt = fp
			c.errMsg = ErrEstimateNotFound.Error()
			c.needsRefetch = true
		case saved.ID == "":
			// Update against a record deleted out-of-band: reset rather than
			// re-submit. Not surfaced as a failure; reconciliation cleanup is
			// a normal consequence of asynchronous edits.
			log.Printf("[rows][controller] remote record vanished row=%s id=%s; resetting", c.rowKey, item.ID)
			c.resetLocked()
			registryClear = true
		default:
			c.draft.UpdatedAt = saved.UpdatedAt
			c.settleLocked()
		}
		c.mu.Unlock()

		// Registry bookkeeping happens off the row lock; it is its own store
		// call.
		if registryID != "" && c.registry != nil {
			if err := c.registry.Set(ctx, c.rowKey, registryID); err != nil {
				log.Printf("[rows][controller] registry set failed row=%s err=%v", c.rowKey, err)
			}
		}
		if registryClear && c.registry != nil {
			if err := c.registry.Clear(ctx, c.rowKey); err != nil {
				log.Printf("[rows][controller] registry clear failed row=%s err=%v", c.rowKey, err)
			}
		}

		c.mu.Lock()
		if c.pending {
			c.pending = false
			continue
		}
		break
	}

	c.saving = false
	c.mu.Unlock()
}

// settleLocked marks a successful save. The attempted patch was consumed at
// dispatch; whatever sits in c.patch now arrived during the flight and stays
// pending for the next loop iteration.
func (c *RowController) settleLocked() {
	c.phase = RowPersisted
	c.lastAttempt = ""
	c.errMsg = ""
}

// mergePatches layers late-arriving changes over the failed attempt so no
// edit is lost when a save errors out.
func mergePatches(base, override entities.LineItemPatch) entities.LineItemPatch {
	out := base
	if override.RoleID != nil {
		out.RoleID = override.RoleID
	}
	if override.EmployeeID != nil {
		out.EmployeeID = override.EmployeeID
	}
	if override.Cost != nil {
		out.Cost = override.Cost
	}
	if override.Rate != nil {
		out.Rate = override.Rate
	}
	if override.StartDate != nil {
		out.StartDate = override.StartDate
	}
	if override.EndDate != nil {
		out.EndDate = override.EndDate
	}
	if override.Billable != nil {
		out.Billable = override.Billable
	}
	if override.BillableExpensePercentage != nil {
		out.BillableExpensePercentage = override.BillableExpensePercentage
	}
	if override.DayNotes != nil {
		out.DayNotes = override.DayNotes
	}
	if override.WeekNotes != nil {
		out.WeekNotes = override.WeekNotes
	}
	return out
}

// resetLocked returns the row to empty: fresh inherited draft, no id, no
// pending work. Any debounced hours flush for the old identity is superseded.
func (c *RowController) resetLocked() {
	c.phase = RowEmpty
	c.draft = c.blankDraft()
	c.patch = entities.LineItemPatch{}
	c.lastAttempt = ""
	c.errMsg = ""
	c.resolver.Invalidate()
	c.hours.supersede()
}

// Delete removes the row: the durable record when one exists, then the local
// state either way. An explicit delete against an already-vanished record is
// surfaced as ErrLineItemNotFound since the user asked for it directly.
func (c *RowController) Delete(ctx context.Context) error {
	c.mu.Lock()
	id := c.draft.ID
	c.mu.Unlock()

	if id != "" {
		found, err := c.repo.Delete(ctx, c.estimate.ID, id)
		if err != nil {
			c.mu.Lock()
			c.errMsg = err.Error()
			c.needsRefetch = true
			c.mu.Unlock()
			return err
		}
		if c.registry != nil {
			if rerr := c.registry.Clear(ctx, c.rowKey); rerr != nil {
				log.Printf("[rows][controller] registry clear failed row=%s err=%v", c.rowKey, rerr)
			}
		}
		if !found {
			c.mu.Lock()
			c.resetLocked()
			c.mu.Unlock()
			return ErrLineItemNotFound
		}
	}

	c.mu.Lock()
	c.resetLocked()
	c.mu.Unlock()
	return nil
}

// Reconcile applies the authoritative line-item list to the row. The remote
// list is ground truth: a clean persisted row reseeds from its remote copy,
// and a remembered id missing from the list reverts the row to empty without
// any delete or create call. Returns the row key of a cleared registry entry
// when one must be removed.
func (c *RowController) Reconcile(authoritative map[string]entities.LineItem) (clearedID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.saving {
		// Never judge staleness while a save is in flight; the explicit
		// marker replaces any wait-and-recheck timer.
		return ""
	}
	if c.draft.ID == "" {
		return ""
	}

	item, ok := authoritative[c.draft.ID]
	if !ok {
		id := c.draft.ID
		log.Printf("[rows][controller] id %s absent from authoritative list; row %s reverts to empty", id, c.rowKey)
		c.resetLocked()
		return id
	}

	if c.patch.IsZero() && c.phase != RowError {
		// No unsaved local work: the draft copy defers to the list's copy so
		// the same record is never shown twice.
		c.seedLocked(item)
	}
	return ""
}

// Seed initializes the row from a persisted record, e.g. when restoring a
// grid after a reload.
func (c *RowController) Seed(item entities.LineItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seedLocked(item)
}

func (c *RowController) seedLocked(item entities.LineItem) {
	if item.CustomHours == nil {
		item.CustomHours = map[string]float64{}
	}
	c.draft = item
	c.phase = RowPersisted
	c.patch = entities.LineItemPatch{}
	c.lastAttempt = ""
	c.errMsg = ""
	c.resolver.Invalidate()
}

// NeedsRefetch reports and clears the reconciling-refetch request raised by
// failed or unknown-outcome saves.
func (c *RowController) NeedsRefetch() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := c.needsRefetch
	c.needsRefetch = false
	return v
}

// Snapshot returns a copy of the row's current state with derived totals.
func (c *RowController) Snapshot() RowSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	item := c.cloneDraftLocked()
	return RowSnapshot{
		RowKey:       c.rowKey,
		Phase:        c.phase,
		LineItemID:   item.ID,
		Item:         item,
		Totals:       ComputeTotals(item.CustomHours, item.Cost, item.Rate, item.BillableExpensePercentage),
		ErrorMessage: c.errMsg,
	}
}

func (c *RowController) cloneDraftLocked() entities.LineItem {
	item := c.draft
	hours := make(map[string]float64, len(c.draft.CustomHours))
	for k, v := range c.draft.CustomHours {
		hours[k] = v
	}
	item.CustomHours = hours
	return item
}

func fingerprintCreate(item entities.LineItem) string {
	item.CustomHours = nil
	item.CreatedAt = time.Time{}
	item.UpdatedAt = time.Time{}
	b, _ := json.Marshal(item)
	return "create:" + string(b)
}

func fingerprintPatch(id string, patch entities.LineItemPatch) string {
	b, _ := json.Marshal(patch)
	return "update:" + id + ":" + string(b)
}
