package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/adatasks/internal/common"
	"github.com/dmitrijs2005/adatasks/internal/ids"
	"github.com/dmitrijs2005/adatasks/internal/logging"
	"github.com/dmitrijs2005/adatasks/internal/models"
	"github.com/dmitrijs2005/adatasks/internal/slug"
	"github.com/dmitrijs2005/adatasks/internal/store"
)

// DefaultListID is selected when neither an override nor a saved selection exists.
const DefaultListID = "trabalho"

// DefaultLists returns the three built-in lists. They are seeded into an
// empty store and can never be removed.
func DefaultLists() []models.List {
	return []models.List{
		{ID: "trabalho", Name: "Trabalho", Icon: "💼", Status: models.ListStatusActive},
		{ID: "pessoal", Name: "Pessoal", Icon: "🏠", Status: models.ListStatusActive},
		{ID: "estudos", Name: "Estudos", Icon: "📚", Status: models.ListStatusActive},
	}
}

// IsDefaultList reports whether id names a built-in list.
func IsDefaultList(id string) bool {
	switch id {
	case "trabalho", "pessoal", "estudos":
		return true
	}
	return false
}

// Notifier is told whenever the task collection has been written.
type Notifier interface {
	Notify(ctx context.Context)
}

// CleanupReport counts what CleanupInconsistentData dropped.
type CleanupReport struct {
	Duplicates int
	Orphans    int
}

// Changed reports whether anything was removed.
func (r CleanupReport) Changed() bool {
	return r.Duplicates+r.Orphans > 0
}

// TaskManager owns the lists, the tasks and the current-list selection.
type TaskManager struct {
	store    *store.Store
	ids      *ids.Generator
	notifier Notifier
	logger   logging.Logger

	lists         []models.List
	tasks         []models.Task
	currentListID string
}

// NewTaskManager loads lists and tasks, seeding the default lists when none
// are stored. The current list is listOverride when set, else the saved
// selection if that list still exists, else DefaultListID. notifier may be nil.
func NewTaskManager(ctx context.Context, st *store.Store, gen *ids.Generator, notifier Notifier, logger logging.Logger, listOverride string) (*TaskManager, error) {
	m := &TaskManager{
		store:    st,
		ids:      gen,
		notifier: notifier,
		logger:   logger.With("component", "tasks"),
	}

	if _, err := st.GetJSON(ctx, store.KeyLists, &m.lists); err != nil {
		return nil, fmt.Errorf("load lists: %w", err)
	}
	if _, err := st.GetJSON(ctx, store.KeyTasks, &m.tasks); err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	for _, t := range m.tasks {
		gen.Observe(t.ID)
	}
	for _, l := range m.lists {
		if l.CreatedAt == nil {
			continue
		}
		if suffix, ok := slug.Suffix(l.ID); ok {
			gen.Observe(suffix)
		}
	}

	if len(m.lists) == 0 {
		if err := m.saveLists(ctx, DefaultLists()); err != nil {
			return nil, err
		}
		m.logger.Info(ctx, "default lists created")
	}

	m.currentListID = listOverride
	if m.currentListID == "" {
		var saved string
		if _, err := st.GetJSON(ctx, store.KeyCurrentList, &saved); err != nil {
			return nil, fmt.Errorf("load current list: %w", err)
		}
		if _, ok := m.ListByID(saved); ok {
			m.currentListID = saved
		} else if saved != "" {
			m.logger.Warn(ctx, "saved list no longer exists", "list_id", saved)
		}
	}
	if m.currentListID == "" {
		m.currentListID = DefaultListID
	}
	return m, nil
}

// CurrentListID returns the list new tasks are added to.
func (m *TaskManager) CurrentListID() string {
	return m.currentListID
}

// SetCurrentList selects and remembers the current list.
func (m *TaskManager) SetCurrentList(ctx context.Context, listID string) error {
	if _, ok := m.ListByID(listID); !ok {
		return common.ErrListNotFound
	}
	if err := m.store.SetJSON(ctx, store.KeyCurrentList, listID); err != nil {
		return fmt.Errorf("save current list: %w", err)
	}
	m.currentListID = listID
	return nil
}

// CreateSampleTasks seeds the demonstration tasks into an empty collection
// once per store. The flag is written only when seeding happened, so deleting
// every task does not bring the samples back while a store that held tasks
// before the flag existed still gets them once it is emptied. It reports
// whether tasks were created.
func (m *TaskManager) CreateSampleTasks(ctx context.Context) (bool, error) {
	var seeded bool
	if _, err := m.store.GetJSON(ctx, store.KeySampleTasksCreated, &seeded); err != nil {
		return false, err
	}
	if seeded || len(m.tasks) > 0 {
		return false, nil
	}

	if err := m.saveTasks(ctx, sampleTasks(m.ids)); err != nil {
		return false, err
	}
	m.logger.Info(ctx, "sample tasks created", "count", len(m.tasks))

	if err := m.store.SetJSON(ctx, store.KeySampleTasksCreated, true); err != nil {
		return false, fmt.Errorf("save sample flag: %w", err)
	}
	return true, nil
}

// CreateList adds a user list. Its id is the slug of name plus a unique
// timestamp suffix. An empty icon becomes models.DefaultListIcon.
func (m *TaskManager) CreateList(ctx context.Context, name, icon string) (models.List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.List{}, common.ErrEmptyName
	}
	if icon == "" {
		icon = models.DefaultListIcon
	}

	id := m.ids.Next()
	createdAt := m.ids.Now().UTC()
	list := models.List{
		ID:        slug.ListID(name, id),
		Name:      name,
		Icon:      icon,
		Status:    models.ListStatusActive,
		CreatedAt: &createdAt,
	}

	if err := m.saveLists(ctx, append(slices.Clone(m.lists), list)); err != nil {
		return models.List{}, err
	}
	m.logger.Info(ctx, "list created", "list_id", list.ID)
	return list, nil
}

// RemoveList deletes a user list together with all of its tasks. Removing
// the current list moves the selection back to DefaultListID.
func (m *TaskManager) RemoveList(ctx context.Context, listID string) (models.List, error) {
	if IsDefaultList(listID) {
		return models.List{}, common.ErrProtectedList
	}
	idx := slices.IndexFunc(m.lists, func(l models.List) bool { return l.ID == listID })
	if idx < 0 {
		return models.List{}, common.ErrListNotFound
	}
	removed := m.lists[idx]

	lists := slices.Delete(slices.Clone(m.lists), idx, idx+1)
	tasks := slices.DeleteFunc(slices.Clone(m.tasks), func(t models.Task) bool { return t.ListID == listID })

	if err := m.saveLists(ctx, lists); err != nil {
		return models.List{}, err
	}
	if err := m.saveTasks(ctx, tasks); err != nil {
		return models.List{}, err
	}
	if m.currentListID == listID {
		if err := m.SetCurrentList(ctx, DefaultListID); err != nil {
			return models.List{}, err
		}
	}

	m.logger.Info(ctx, "list removed", "list_id", listID)
	return removed, nil
}

// AllLists returns every list in creation order.
func (m *TaskManager) AllLists() []models.List {
	return slices.Clone(m.lists)
}

// ListByID looks a list up by id.
func (m *TaskManager) ListByID(listID string) (models.List, bool) {
	for _, l := range m.lists {
		if l.ID == listID {
			return l, true
		}
	}
	return models.List{}, false
}

// AddTask appends a pending task to the current list. An empty priority
// means medium.
func (m *TaskManager) AddTask(ctx context.Context, title, priority string) (models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, common.ErrEmptyTitle
	}
	p, err := models.ParsePriority(priority)
	if err != nil {
		return models.Task{}, common.ErrInvalidPriority
	}

	task := models.Task{
		ID:        m.ids.Next(),
		Title:     title,
		Priority:  p,
		ListID:    m.currentListID,
		CreatedAt: m.ids.Now().UTC(),
	}

	if err := m.saveTasks(ctx, append(slices.Clone(m.tasks), task)); err != nil {
		return models.Task{}, err
	}
	m.logger.Debug(ctx, "task added", "task_id", task.ID, "list_id", task.ListID)
	return task, nil
}

// ToggleTask flips the completion state of a task and stamps or clears
// CompletedAt accordingly.
func (m *TaskManager) ToggleTask(ctx context.Context, taskID int64) (models.Task, error) {
	idx := m.taskIndex(taskID)
	if idx < 0 {
		return models.Task{}, common.ErrTaskNotFound
	}

	tasks := slices.Clone(m.tasks)
	t := &tasks[idx]
	t.Completed = !t.Completed
	if t.Completed {
		now := m.ids.Now().UTC()
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}

	if err := m.saveTasks(ctx, tasks); err != nil {
		return models.Task{}, err
	}
	return tasks[idx], nil
}

// RemoveTask deletes one task.
func (m *TaskManager) RemoveTask(ctx context.Context, taskID int64) (models.Task, error) {
	idx := m.taskIndex(taskID)
	if idx < 0 {
		return models.Task{}, common.ErrTaskNotFound
	}
	removed := m.tasks[idx]

	if err := m.saveTasks(ctx, slices.Delete(slices.Clone(m.tasks), idx, idx+1)); err != nil {
		return models.Task{}, err
	}
	return removed, nil
}

// RemoveCompletedTasks deletes the completed tasks of the current list and
// returns how many were removed. Other lists are untouched.
func (m *TaskManager) RemoveCompletedTasks(ctx context.Context) (int, error) {
	before := len(m.tasks)
	tasks := slices.DeleteFunc(slices.Clone(m.tasks), func(t models.Task) bool {
		return t.ListID == m.currentListID && t.Completed
	})

	if err := m.saveTasks(ctx, tasks); err != nil {
		return 0, err
	}
	return before - len(tasks), nil
}

// AllTasks returns the tasks of the current list.
func (m *TaskManager) AllTasks() []models.Task {
	return m.filter(func(t models.Task) bool { return t.ListID == m.currentListID })
}

// PendingTasks returns the open tasks of the current list.
func (m *TaskManager) PendingTasks() []models.Task {
	return m.filter(func(t models.Task) bool { return t.ListID == m.currentListID && !t.Completed })
}

// CompletedTasks returns the finished tasks of the current list.
func (m *TaskManager) CompletedTasks() []models.Task {
	return m.filter(func(t models.Task) bool { return t.ListID == m.currentListID && t.Completed })
}

// AllTasksGlobal returns the tasks of every list.
func (m *TaskManager) AllTasksGlobal() []models.Task {
	return slices.Clone(m.tasks)
}

// ListStats counts the tasks of any list, current or not.
func (m *TaskManager) ListStats(listID string) models.ListStats {
	var s models.ListStats
	for _, t := range m.tasks {
		if t.ListID != listID {
			continue
		}
		s.Total++
		if t.Completed {
			s.Completed++
		}
	}
	s.Pending = s.Total - s.Completed
	return s
}

// CleanupInconsistentData drops tasks whose id was already seen (keeping the
// first occurrence) and then tasks pointing at a list that does not exist.
// The store is written only if something was dropped.
func (m *TaskManager) CleanupInconsistentData(ctx context.Context) (CleanupReport, error) {
	var report CleanupReport

	seen := make(map[int64]struct{}, len(m.tasks))
	unique := make([]models.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		if _, dup := seen[t.ID]; dup {
			m.logger.Warn(ctx, "dropping duplicate task", "task_id", t.ID, "title", t.Title)
			report.Duplicates++
			continue
		}
		seen[t.ID] = struct{}{}
		unique = append(unique, t)
	}

	valid := make(map[string]struct{}, len(m.lists))
	for _, l := range m.lists {
		valid[l.ID] = struct{}{}
	}
	kept := unique[:0]
	for _, t := range unique {
		if _, ok := valid[t.ListID]; !ok {
			m.logger.Warn(ctx, "dropping orphan task", "task_id", t.ID, "list_id", t.ListID)
			report.Orphans++
			continue
		}
		kept = append(kept, t)
	}

	if !report.Changed() {
		return report, nil
	}
	if err := m.saveTasks(ctx, kept); err != nil {
		return CleanupReport{}, err
	}
	m.logger.Info(ctx, "inconsistent data cleaned up", "duplicates", report.Duplicates, "orphans", report.Orphans, "remaining", len(kept))
	return report, nil
}

func (m *TaskManager) taskIndex(taskID int64) int {
	return slices.IndexFunc(m.tasks, func(t models.Task) bool { return t.ID == taskID })
}

func (m *TaskManager) filter(keep func(models.Task) bool) []models.Task {
	out := make([]models.Task, 0)
	for _, t := range m.tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// saveLists persists lists and adopts them only once the write succeeded.
func (m *TaskManager) saveLists(ctx context.Context, lists []models.List) error {
	if lists == nil {
		lists = []models.List{}
	}
	if err := m.store.SetJSON(ctx, store.KeyLists, lists); err != nil {
		return fmt.Errorf("save lists: %w", err)
	}
	m.lists = lists
	return nil
}

// saveTasks persists tasks, adopts them and notifies observers.
func (m *TaskManager) saveTasks(ctx context.Context, tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	if err := m.store.SetJSON(ctx, store.KeyTasks, tasks); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	m.tasks = tasks
	if m.notifier != nil {
		m.notifier.Notify(ctx)
	}
	return nil
}
