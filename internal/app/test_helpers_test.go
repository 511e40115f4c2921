package app

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/example/hearth/internal/ctxutil"
	"github.com/example/hearth/internal/ports/secondary"
)

// actorCtx returns a context carrying USER-001 as the acting user.
func actorCtx() context.Context {
	return ctxutil.WithActorID(context.Background(), "USER-001")
}

// ============================================================================
// Mock Implementations
// ============================================================================

// Ensure mocks implement the interfaces
var (
	_ secondary.ProjectRepository   = (*mockProjectRepository)(nil)
	_ secondary.PhaseRepository     = (*mockPhaseRepository)(nil)
	_ secondary.ItemRepository      = (*mockItemRepository)(nil)
	_ secondary.UpdateRepository    = (*mockUpdateRepository)(nil)
	_ secondary.MemberRepository    = (*mockMemberRepository)(nil)
	_ secondary.CelebrationNotifier = (*mockCelebrationNotifier)(nil)
)

// mockProjectRepository implements secondary.ProjectRepository for testing.
type mockProjectRepository struct {
	projects  map[string]*secondary.ProjectRecord
	createErr error
	getErr    error
	deleteErr error
}

func newMockProjectRepository() *mockProjectRepository {
	return &mockProjectRepository{projects: make(map[string]*secondary.ProjectRecord)}
}

func (m *mockProjectRepository) Create(ctx context.Context, project *secondary.ProjectRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.projects[project.ID] = project
	return nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id string) (*secondary.ProjectRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if p, ok := m.projects[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("project %s not found", id)
}

func (m *mockProjectRepository) List(ctx context.Context, filters secondary.ProjectFilters) ([]*secondary.ProjectRecord, error) {
	var result []*secondary.ProjectRecord
	for _, p := range m.projects {
		if filters.SpaceID != "" && p.SpaceID != filters.SpaceID {
			continue
		}
		if filters.Status != "" && p.Status != filters.Status {
			continue
		}
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.projects, id)
	return nil
}

func (m *mockProjectRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := m.projects[id]
	return ok, nil
}

func (m *mockProjectRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("PROJ-%03d", len(m.projects)+1), nil
}

// mockPhaseRepository implements secondary.PhaseRepository for testing.
type mockPhaseRepository struct {
	phases            map[string]*secondary.PhaseRecord
	createErr         error
	getErr            error
	listErr           error
	updateStatusErr   error
	updatePositionErr map[string]error // per-phase injection
}

func newMockPhaseRepository() *mockPhaseRepository {
	return &mockPhaseRepository{
		phases:            make(map[string]*secondary.PhaseRecord),
		updatePositionErr: make(map[string]error),
	}
}

func (m *mockPhaseRepository) Create(ctx context.Context, phase *secondary.PhaseRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	if phase.Status == "" {
		phase.Status = "active"
	}
	m.phases[phase.ID] = phase
	return nil
}

func (m *mockPhaseRepository) GetByID(ctx context.Context, id string) (*secondary.PhaseRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if p, ok := m.phases[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("phase %s not found", id)
}

func (m *mockPhaseRepository) ListByProject(ctx context.Context, projectID, status string) ([]*secondary.PhaseRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.PhaseRecord
	for _, p := range m.phases {
		if p.ProjectID != projectID {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Position != result[j].Position {
			return result[i].Position < result[j].Position
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *mockPhaseRepository) UpdatePosition(ctx context.Context, id string, position int) error {
	if err := m.updatePositionErr[id]; err != nil {
		return err
	}
	if p, ok := m.phases[id]; ok {
		p.Position = position
		return nil
	}
	return fmt.Errorf("phase %s not found", id)
}

func (m *mockPhaseRepository) UpdateStatus(ctx context.Context, id, status, completedAt string) error {
	if m.updateStatusErr != nil {
		return m.updateStatusErr
	}
	if p, ok := m.phases[id]; ok {
		p.Status = status
		p.CompletedAt = completedAt
		return nil
	}
	return fmt.Errorf("phase %s not found", id)
}

func (m *mockPhaseRepository) UpdateTitle(ctx context.Context, id, title string) error {
	if p, ok := m.phases[id]; ok {
		p.Title = title
		return nil
	}
	return fmt.Errorf("phase %s not found", id)
}

func (m *mockPhaseRepository) Assign(ctx context.Context, id, userID string) error {
	if p, ok := m.phases[id]; ok {
		p.AssignedTo = userID
		return nil
	}
	return fmt.Errorf("phase %s not found", id)
}

func (m *mockPhaseRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.phases[id]; !ok {
		return fmt.Errorf("phase %s not found", id)
	}
	delete(m.phases, id)
	return nil
}

func (m *mockPhaseRepository) CountActive(ctx context.Context, projectID string) (int, error) {
	count := 0
	for _, p := range m.phases {
		if p.ProjectID == projectID && p.Status == "active" {
			count++
		}
	}
	return count, nil
}

func (m *mockPhaseRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("PH-%03d", len(m.phases)+1), nil
}

// mockItemRepository implements secondary.ItemRepository for testing.
type mockItemRepository struct {
	items             map[string]*secondary.ItemRecord
	getErr            error
	listErr           error
	setCompletionErr  error
	updateErr         error
	updatePositionErr map[string]error // per-item injection
}

func newMockItemRepository() *mockItemRepository {
	return &mockItemRepository{
		items:             make(map[string]*secondary.ItemRecord),
		updatePositionErr: make(map[string]error),
	}
}

func (m *mockItemRepository) Create(ctx context.Context, item *secondary.ItemRecord) error {
	m.items[item.ID] = item
	return nil
}

func (m *mockItemRepository) GetByID(ctx context.Context, id string) (*secondary.ItemRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if it, ok := m.items[id]; ok {
		copied := *it
		return &copied, nil
	}
	return nil, fmt.Errorf("item %s not found", id)
}

func (m *mockItemRepository) ListByPhase(ctx context.Context, phaseID string) ([]*secondary.ItemRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.ItemRecord
	for _, it := range m.items {
		if it.PhaseID == phaseID {
			result = append(result, it)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Position != result[j].Position {
			return result[i].Position < result[j].Position
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *mockItemRepository) UpdatePosition(ctx context.Context, id string, position int) error {
	if err := m.updatePositionErr[id]; err != nil {
		return err
	}
	if it, ok := m.items[id]; ok {
		it.Position = position
		return nil
	}
	return fmt.Errorf("item %s not found", id)
}

func (m *mockItemRepository) SetCompletion(ctx context.Context, id string, completed bool, completedAt string) error {
	if m.setCompletionErr != nil {
		return m.setCompletionErr
	}
	if it, ok := m.items[id]; ok {
		it.Completed = completed
		it.CompletedAt = completedAt
		return nil
	}
	return fmt.Errorf("item %s not found", id)
}

func (m *mockItemRepository) Update(ctx context.Context, item *secondary.ItemRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if existing, ok := m.items[item.ID]; ok {
		existing.Title = item.Title
		existing.Notes = item.Notes
		existing.DueDate = item.DueDate
		existing.AssignedTo = item.AssignedTo
		existing.SubItems = item.SubItems
		return nil
	}
	return fmt.Errorf("item %s not found", item.ID)
}

func (m *mockItemRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return fmt.Errorf("item %s not found", id)
	}
	delete(m.items, id)
	return nil
}

func (m *mockItemRepository) CountByPhase(ctx context.Context, phaseID string) (int, error) {
	count := 0
	for _, it := range m.items {
		if it.PhaseID == phaseID {
			count++
		}
	}
	return count, nil
}

func (m *mockItemRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("ITEM-%03d", len(m.items)+1), nil
}

// mockUpdateRepository implements secondary.UpdateRepository for testing.
// Entries are kept in insertion order; ListByProject reverses it, matching
// the newest-first read of the real adapter.
type mockUpdateRepository struct {
	updates   []*secondary.UpdateRecord
	nextID    int
	createErr error
	getErr    error
	nextIDErr error
}

func newMockUpdateRepository() *mockUpdateRepository {
	return &mockUpdateRepository{}
}

func (m *mockUpdateRepository) Create(ctx context.Context, update *secondary.UpdateRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.updates = append(m.updates, update)
	return nil
}

func (m *mockUpdateRepository) GetByID(ctx context.Context, id string) (*secondary.UpdateRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, u := range m.updates {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("update %s not found", id)
}

func (m *mockUpdateRepository) ListByProject(ctx context.Context, projectID string, limit int) ([]*secondary.UpdateRecord, error) {
	var result []*secondary.UpdateRecord
	for i := len(m.updates) - 1; i >= 0; i-- {
		if m.updates[i].ProjectID != projectID {
			continue
		}
		result = append(result, m.updates[i])
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

func (m *mockUpdateRepository) UpdateContent(ctx context.Context, id, content string) error {
	for _, u := range m.updates {
		if u.ID == id {
			u.Content = content
			return nil
		}
	}
	return fmt.Errorf("update %s not found", id)
}

func (m *mockUpdateRepository) Delete(ctx context.Context, id string) error {
	for i, u := range m.updates {
		if u.ID == id {
			m.updates = append(m.updates[:i], m.updates[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("update %s not found", id)
}

func (m *mockUpdateRepository) GetNextID(ctx context.Context) (string, error) {
	if m.nextIDErr != nil {
		return "", m.nextIDErr
	}
	m.nextID++
	return fmt.Sprintf("UPD-%03d", m.nextID), nil
}

// byType filters recorded entries by update_type.
func (m *mockUpdateRepository) byType(updateType string) []*secondary.UpdateRecord {
	var result []*secondary.UpdateRecord
	for _, u := range m.updates {
		if u.UpdateType == updateType {
			result = append(result, u)
		}
	}
	return result
}

// mockMemberRepository implements secondary.MemberRepository for testing.
type mockMemberRepository struct {
	members map[string]*secondary.MemberRecord
}

func newMockMemberRepository() *mockMemberRepository {
	return &mockMemberRepository{
		members: map[string]*secondary.MemberRecord{
			"USER-001": {ID: "USER-001", SpaceID: "SPACE-001", Name: "Alex"},
			"USER-002": {ID: "USER-002", SpaceID: "SPACE-001", Name: "Sam"},
		},
	}
}

func (m *mockMemberRepository) GetByID(ctx context.Context, id string) (*secondary.MemberRecord, error) {
	if member, ok := m.members[id]; ok {
		return member, nil
	}
	return nil, errors.New("member not found")
}

func (m *mockMemberRepository) ListBySpace(ctx context.Context, spaceID string) ([]*secondary.MemberRecord, error) {
	var result []*secondary.MemberRecord
	for _, member := range m.members {
		if member.SpaceID == spaceID {
			result = append(result, member)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// mockCelebrationNotifier implements secondary.CelebrationNotifier for testing.
type mockCelebrationNotifier struct {
	celebrated []string
}

func (m *mockCelebrationNotifier) Celebrate(phaseTitle string) {
	m.celebrated = append(m.celebrated, phaseTitle)
}
