package shopping

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Veraticus/shopping-buddy/internal/common"
	"github.com/Veraticus/shopping-buddy/internal/model"
	"github.com/Veraticus/shopping-buddy/internal/service"
	"github.com/google/uuid"
)

// DefaultDuplicateWarningDelay is how long the duplicate-name signal stays up.
const DefaultDuplicateWarningDelay = 3 * time.Second

// Observer receives a snapshot after every state change.
type Observer func(State)

// Option configures a Manager.
type Option func(*Manager)

// WithDuplicateWarningDelay overrides how long the duplicate signal stays up.
func WithDuplicateWarningDelay(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.warningDelay = d
		}
	}
}

// Manager is the single owner of the shopping list. Every mutation of the
// item collection is followed by a full save through the persistence boundary.
//
// Operations are meant to be driven from one goroutine (a UI loop); the lock
// only covers the initial load and the warning timer, which run on their own.
type Manager struct {
	persistence   service.Persistence
	ready         chan struct{}
	editing       *model.Item
	pendingDelete *model.Item
	warningTimer  *time.Timer
	observers     map[int]Observer
	draft         Draft
	items         []model.Item
	hidden        []model.Section
	warningDelay  time.Duration
	warningGen    uint64
	nextObserver  int
	mu            sync.Mutex
	initOnce      sync.Once

	loading          bool
	duplicateWarning bool
	confirmDelete    bool
	confirmDeleteAll bool
	showInputFields  bool
}

// NewManager creates a manager in the loading state. Call Initialize to seed
// it from persistence.
func NewManager(persistence service.Persistence, opts ...Option) *Manager {
	m := &Manager{
		persistence:  persistence,
		ready:        make(chan struct{}),
		observers:    make(map[int]Observer),
		draft:        Draft{Section: model.DefaultSection},
		items:        []model.Item{},
		warningDelay: DefaultDuplicateWarningDelay,
		loading:      true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize loads the saved items in the background. Until the load
// completes Loading reports true; then the collection is replaced wholesale.
// Only the first call has any effect.
func (m *Manager) Initialize(ctx context.Context) {
	m.initOnce.Do(func() {
		go func() {
			items := m.persistence.Load(ctx)
			if items == nil {
				items = []model.Item{}
			}
			m.update(func() bool {
				m.items = items
				m.loading = false
				return true
			})
			slog.Debug("shopping list loaded", "count", len(items))
			close(m.ready)
		}()
	})
}

// WaitReady blocks until the initial load finished or ctx is done.
func (m *Manager) WaitReady(ctx context.Context) error {
	select {
	case <-m.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Loading reports whether the initial load is still running.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Close stops the pending duplicate-warning timer.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.warningTimer != nil {
		m.warningTimer.Stop()
	}
	m.warningGen++
}

// Subscribe registers an observer. The returned function removes it.
func (m *Manager) Subscribe(fn Observer) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextObserver
	m.nextObserver++
	m.observers[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.observers, id)
		m.mu.Unlock()
	}
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Items returns a copy of the item collection in insertion order.
func (m *Manager) Items() []model.Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.items)
}

// ItemsBySection groups the items for display.
func (m *Manager) ItemsBySection() []SectionGroup {
	return m.Snapshot().Groups()
}

// TotalPrice sums quantity times unit price over every item.
func (m *Manager) TotalPrice() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return totalPrice(m.items)
}

// ItemExists reports whether an item with the same trimmed name exists,
// ignoring case.
func (m *Manager) ItemExists(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.itemExistsLocked(name)
}

// Draft returns the current form input.
func (m *Manager) Draft() Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft
}

// SetDraft replaces the form input.
func (m *Manager) SetDraft(d Draft) {
	m.update(func() bool {
		m.draft = d
		return true
	})
}

// ClearForm empties the text fields and keeps the selected section.
func (m *Manager) ClearForm() {
	m.update(func() bool {
		m.clearFormLocked()
		return true
	})
}

// ToggleInputFields shows or hides the add/edit form.
func (m *Manager) ToggleInputFields() {
	m.update(func() bool {
		m.showInputFields = !m.showInputFields
		return true
	})
}

// Submit adds the draft as a new item, or commits it when an edit is in
// progress.
func (m *Manager) Submit(ctx context.Context) error {
	m.mu.Lock()
	editing := m.editing != nil
	draft := m.draft
	m.mu.Unlock()

	if editing {
		return m.CommitEdit(ctx)
	}
	_, err := m.AddItem(ctx, draft)
	return err
}

// AddItem validates the draft and appends a new item. Rejections leave the
// collection untouched: a duplicate name raises the duplicate signal, an
// unparseable quantity is dropped silently. An unparseable price counts as 0.
// The returned error says why nothing was added; callers may ignore it.
func (m *Manager) AddItem(ctx context.Context, d Draft) (model.Item, error) {
	var (
		added model.Item
		err   error
	)

	m.update(func() bool {
		name := strings.TrimSpace(d.Name)
		if m.itemExistsLocked(name) {
			m.raiseDuplicateWarningLocked()
			err = common.ErrDuplicateItem
			return true
		}

		quantity, parseErr := strconv.Atoi(strings.TrimSpace(d.QuantityText))
		if parseErr != nil {
			err = common.ErrInvalidQuantity
			return false
		}

		item, newErr := model.NewItem(name, quantity, parsePrice(d.UnitPriceText), d.Section)
		if newErr != nil {
			err = newErr
			return false
		}

		m.items = append(m.items, item)
		m.clearFormLocked()
		m.persistLocked(ctx)
		added = item
		return true
	})

	return added, err
}

// TogglePurchased flips the purchased flag of the item with id.
func (m *Manager) TogglePurchased(ctx context.Context, id uuid.UUID) bool {
	var found bool
	m.update(func() bool {
		idx := m.indexLocked(id)
		if idx < 0 {
			return false
		}
		m.items[idx].IsPurchased = !m.items[idx].IsPurchased
		m.persistLocked(ctx)
		found = true
		return true
	})
	return found
}

// BeginEdit puts item under edit and copies its values into the form. Any
// previous edit is dropped.
func (m *Manager) BeginEdit(item model.Item) {
	m.update(func() bool {
		m.editing = cloneItem(&item)
		m.draft = Draft{
			Name:          item.Name,
			QuantityText:  model.FormatQuantity(item.Quantity),
			UnitPriceText: model.FormatPrice(item.UnitPrice),
			Section:       item.Section,
		}
		m.showInputFields = true
		return true
	})
}

// CommitEdit rebuilds the edited item from the form, keeping its id and
// purchase state. Unparseable numbers fall back to 0 and are then clamped to
// valid values, so an edit is never rejected for its content.
func (m *Manager) CommitEdit(ctx context.Context) error {
	var err error
	m.update(func() bool {
		if m.editing == nil {
			err = common.ErrNoEditInProgress
			return false
		}
		idx := m.indexLocked(m.editing.ID)
		if idx < 0 {
			err = common.ErrNotFound
			return false
		}

		current := m.items[idx]
		quantity, parseErr := strconv.Atoi(strings.TrimSpace(m.draft.QuantityText))
		if parseErr != nil {
			quantity = 0
		}
		section := m.draft.Section
		if !section.Valid() {
			section = current.Section
		}

		m.items[idx] = model.Item{
			ID:          current.ID,
			Name:        model.NonEmptyName(m.draft.Name),
			Quantity:    model.NonZeroQuantity(quantity),
			UnitPrice:   model.PriceAmount(parsePrice(m.draft.UnitPriceText)),
			IsPurchased: current.IsPurchased,
			Section:     section,
		}
		m.clearFormLocked()
		m.persistLocked(ctx)
		m.editing = nil
		return true
	})
	return err
}

// CancelEdit abandons the edit without saving.
func (m *Manager) CancelEdit() {
	m.update(func() bool {
		m.editing = nil
		m.clearFormLocked()
		return true
	})
}

// RemoveItem deletes the item with id.
func (m *Manager) RemoveItem(ctx context.Context, id uuid.UUID) bool {
	var found bool
	m.update(func() bool {
		found = m.removeLocked(id)
		if found {
			m.persistLocked(ctx)
		}
		return found
	})
	return found
}

// RequestDelete stores item as the deletion candidate and raises the
// confirmation signal.
func (m *Manager) RequestDelete(item model.Item) {
	m.update(func() bool {
		m.pendingDelete = cloneItem(&item)
		m.confirmDelete = true
		return true
	})
}

// ConfirmDelete removes the candidate if it is still present, then clears
// the candidate and the confirmation signal either way.
func (m *Manager) ConfirmDelete(ctx context.Context) bool {
	var removed bool
	m.update(func() bool {
		if m.pendingDelete != nil && m.removeLocked(m.pendingDelete.ID) {
			m.persistLocked(ctx)
			removed = true
		}
		m.pendingDelete = nil
		m.confirmDelete = false
		return true
	})
	return removed
}

// CancelDelete drops the candidate without deleting.
func (m *Manager) CancelDelete() {
	m.update(func() bool {
		m.pendingDelete = nil
		m.confirmDelete = false
		return true
	})
}

// RequestDeleteAll raises the confirmation signal for clearing the list.
func (m *Manager) RequestDeleteAll() {
	m.update(func() bool {
		m.confirmDeleteAll = true
		return true
	})
}

// ConfirmDeleteAll empties the list and saves once.
func (m *Manager) ConfirmDeleteAll(ctx context.Context) int {
	var removed int
	m.update(func() bool {
		removed = len(m.items)
		m.items = []model.Item{}
		m.persistLocked(ctx)
		m.confirmDeleteAll = false
		return true
	})
	return removed
}

// CancelDeleteAll drops the clear-list confirmation.
func (m *Manager) CancelDeleteAll() {
	m.update(func() bool {
		m.confirmDeleteAll = false
		return true
	})
}

// ToggleSectionVisibility collapses or expands a section. View state only;
// nothing is saved.
func (m *Manager) ToggleSectionVisibility(section model.Section) {
	m.update(func() bool {
		if idx := slices.Index(m.hidden, section); idx >= 0 {
			m.hidden = slices.Delete(m.hidden, idx, idx+1)
		} else {
			m.hidden = append(m.hidden, section)
		}
		return true
	})
}

// update runs fn under the lock and notifies observers when fn reports a change.
func (m *Manager) update(fn func() bool) {
	m.mu.Lock()
	changed := fn()
	if !changed {
		m.mu.Unlock()
		return
	}
	state := m.snapshotLocked()
	observers := make([]Observer, 0, len(m.observers))
	for _, id := range sortedKeys(m.observers) {
		observers = append(observers, m.observers[id])
	}
	m.mu.Unlock()

	for _, observer := range observers {
		observer(state)
	}
}

func (m *Manager) snapshotLocked() State {
	return State{
		Items:            slices.Clone(m.items),
		HiddenSections:   slices.Clone(m.hidden),
		EditingItem:      cloneItem(m.editing),
		PendingDelete:    cloneItem(m.pendingDelete),
		Draft:            m.draft,
		Loading:          m.loading,
		DuplicateWarning: m.duplicateWarning,
		ConfirmDelete:    m.confirmDelete,
		ConfirmDeleteAll: m.confirmDeleteAll,
		ShowInputFields:  m.showInputFields,
	}
}

func (m *Manager) persistLocked(ctx context.Context) {
	m.persistence.Save(ctx, slices.Clone(m.items))
}

func (m *Manager) clearFormLocked() {
	m.draft.Name = ""
	m.draft.QuantityText = ""
	m.draft.UnitPriceText = ""
}

func (m *Manager) indexLocked(id uuid.UUID) int {
	return slices.IndexFunc(m.items, func(item model.Item) bool {
		return item.ID == id
	})
}

func (m *Manager) removeLocked(id uuid.UUID) bool {
	idx := m.indexLocked(id)
	if idx < 0 {
		return false
	}
	m.items = slices.Delete(m.items, idx, idx+1)
	return true
}

func (m *Manager) itemExistsLocked(name string) bool {
	return slices.ContainsFunc(m.items, func(item model.Item) bool {
		return model.SameName(item.Name, name)
	})
}

// raiseDuplicateWarningLocked sets the signal and re-arms the clear timer, so
// the signal drops once, a full delay after the latest duplicate.
func (m *Manager) raiseDuplicateWarningLocked() {
	m.duplicateWarning = true
	if m.warningTimer != nil {
		m.warningTimer.Stop()
	}
	m.warningGen++
	gen := m.warningGen
	m.warningTimer = time.AfterFunc(m.warningDelay, func() {
		m.update(func() bool {
			if gen != m.warningGen || !m.duplicateWarning {
				return false
			}
			m.duplicateWarning = false
			return true
		})
	})
}

func parsePrice(text string) float64 {
	price, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0
	}
	return price
}

func sortedKeys(m map[int]Observer) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
