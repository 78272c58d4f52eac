package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/roster/internal/member/entity"
	"github.com/shandysiswandi/roster/internal/member/usecase"
	"github.com/shandysiswandi/roster/internal/pkg/goerror"
	"github.com/shandysiswandi/roster/internal/pkg/instrument"
	"github.com/shandysiswandi/roster/internal/pkg/validator"
)

type fakeRepoDB struct {
	byID   map[int64]*entity.Member
	byCol  map[string]map[string]*entity.Member // column -> value -> member
	list   []entity.Member
	nextID int64

	getFieldErr error
	getIDErr    error
	listErr     error
	createErr   error

	getFieldCalls int
	createCalls   int
	created       []entity.NewMember
}

func newFakeRepoDB() *fakeRepoDB {
	return &fakeRepoDB{
		byID:   map[int64]*entity.Member{},
		byCol:  map[string]map[string]*entity.Member{"name": {}, "email": {}},
		nextID: 1,
	}
}

func (f *fakeRepoDB) add(m entity.Member) {
	cp := m
	f.byID[m.ID] = &cp
	f.byCol["name"][m.Name] = &cp
	f.byCol["email"][m.Email] = &cp
}

func (f *fakeRepoDB) GetMemberByField(_ context.Context, field, value string) (*entity.Member, error) {
	f.getFieldCalls++
	if f.getFieldErr != nil {
		return nil, f.getFieldErr
	}
	if m, ok := f.byCol[field][value]; ok {
		return m, nil
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeRepoDB) GetMemberByID(_ context.Context, id int64) (*entity.Member, error) {
	if f.getIDErr != nil {
		return nil, f.getIDErr
	}
	if m, ok := f.byID[id]; ok {
		return m, nil
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeRepoDB) GetMemberList(_ context.Context) ([]entity.Member, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func (f *fakeRepoDB) CreateMember(_ context.Context, in entity.NewMember) (int64, error) {
	f.createCalls++
	if f.createErr != nil {
		return 0, f.createErr
	}
	id := f.nextID
	f.nextID++
	f.created = append(f.created, in)
	f.add(entity.Member{ID: id, Name: in.Name, Email: in.Email, Phone: in.Phone, CreatedAt: in.CreatedAt})
	return id, nil
}

type fakeMessaging struct {
	publishCalls int
	last         usecase.MemberRegisteredEvent
	err          error
}

func (f *fakeMessaging) PublishMemberRegistered(_ context.Context, msg usecase.MemberRegisteredEvent) error {
	f.publishCalls++
	f.last = msg
	return f.err
}

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

func newUsecase(t *testing.T, repo *fakeRepoDB, msg *fakeMessaging) *usecase.Usecase {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	return usecase.New(usecase.Dependency{
		RepoDB:        repo,
		RepoMessaging: msg,
		Validator:     v10,
		Clock:         fixedClock{at: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)},
		Instrument:    instrument.NewNoop(),
	})
}

func validInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: "0123456789",
	}
}

func TestRegister(t *testing.T) {
	// Arrange
	repo := newFakeRepoDB()
	msg := &fakeMessaging{}
	uc := newUsecase(t, repo, msg)

	// Act
	err := uc.Register(context.Background(), validInput())

	// Assert
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if repo.createCalls != 1 {
		t.Fatalf("expected one insert, got %d", repo.createCalls)
	}
	if repo.created[0].CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be stamped")
	}
	if msg.publishCalls != 1 {
		t.Fatalf("expected registration event, got %d publishes", msg.publishCalls)
	}
	if msg.last.MemberID != 1 || msg.last.Email != "jane@example.com" {
		t.Fatalf("unexpected event payload: %+v", msg.last)
	}

	// The stored member must be retrievable afterwards.
	m, err := repo.GetMemberByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("stored member not retrievable: %v", err)
	}
	if m.Name != "Jane Doe" {
		t.Fatalf("unexpected stored name %q", m.Name)
	}
}

func TestRegisterNormalizesEmail(t *testing.T) {
	// Arrange
	repo := newFakeRepoDB()
	uc := newUsecase(t, repo, &fakeMessaging{})

	in := validInput()
	in.Email = "  Jane@Example.COM "

	// Act
	err := uc.Register(context.Background(), in)

	// Assert
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if repo.created[0].Email != "jane@example.com" {
		t.Fatalf("expected lowercased email, got %q", repo.created[0].Email)
	}
}

func TestRegisterInvalidInputNeverTouchesRepo(t *testing.T) {
	// Arrange
	repo := newFakeRepoDB()
	uc := newUsecase(t, repo, &fakeMessaging{})

	in := validInput()
	in.Email = "not-an-email"

	// Act
	err := uc.Register(context.Background(), in)

	// Assert
	var gerr *goerror.Error
	if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeInvalidInput {
		t.Fatalf("expected invalid input error, got %v", err)
	}
	if repo.getFieldCalls != 0 || repo.createCalls != 0 {
		t.Fatalf("repo touched on invalid input: lookups=%d inserts=%d", repo.getFieldCalls, repo.createCalls)
	}
}

func TestRegisterReportsAllViolationsAtOnce(t *testing.T) {
	// Arrange
	uc := newUsecase(t, newFakeRepoDB(), &fakeMessaging{})

	// Act
	err := uc.Register(context.Background(), usecase.RegisterInput{})

	// Assert
	var errValidate validator.V10ValidationError
	if !errors.As(err, &errValidate) {
		t.Fatalf("expected field violations, got %v", err)
	}
	for _, field := range []string{"name", "email", "phone"} {
		if _, ok := errValidate[field]; !ok {
			t.Fatalf("expected violation for %q, got %v", field, errValidate)
		}
	}
}

func TestRegisterEmailConflict(t *testing.T) {
	// Arrange
	repo := newFakeRepoDB()
	repo.add(entity.Member{ID: 7, Name: "Someone Else", Email: "jane@example.com", Phone: "0123456789"})
	uc := newUsecase(t, repo, &fakeMessaging{})

	// Act
	err := uc.Register(context.Background(), validInput())

	// Assert
	var gerr *goerror.Error
	if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
	fields := gerr.Fields()
	if len(fields) != 1 || fields["email"] != "Email taken" {
		t.Fatalf("unexpected conflict fields: %v", fields)
	}
	if repo.createCalls != 0 {
		t.Fatalf("insert attempted despite conflict")
	}
}

func TestRegisterReportsEveryConflict(t *testing.T) {
	// Arrange
	repo := newFakeRepoDB()
	repo.add(entity.Member{ID: 7, Name: "Jane Doe", Email: "jane@example.com", Phone: "0123456789"})
	uc := newUsecase(t, repo, &fakeMessaging{})

	// Act
	err := uc.Register(context.Background(), validInput())

	// Assert
	var gerr *goerror.Error
	if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
	fields := gerr.Fields()
	if fields["name"] != "Name taken" || fields["email"] != "Email taken" {
		t.Fatalf("expected both fields reported, got %v", fields)
	}
	if repo.getFieldCalls != 2 {
		t.Fatalf("expected both unique fields checked, got %d lookups", repo.getFieldCalls)
	}
}

func TestRegisterLookupFailure(t *testing.T) {
	// Arrange
	repo := newFakeRepoDB()
	repo.getFieldErr = errors.New("connection reset")
	uc := newUsecase(t, repo, &fakeMessaging{})

	// Act
	err := uc.Register(context.Background(), validInput())

	// Assert
	var gerr *goerror.Error
	if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeUnexpected {
		t.Fatalf("expected unexpected failure, got %v", err)
	}
	if gerr.Msg() != "connection reset" {
		t.Fatalf("expected underlying message surfaced, got %q", gerr.Msg())
	}
	if repo.createCalls != 0 {
		t.Fatalf("insert attempted despite lookup failure")
	}
}

func TestRegisterInsertFailure(t *testing.T) {
	// Arrange
	repo := newFakeRepoDB()
	repo.createErr = errors.New("disk full")
	msg := &fakeMessaging{}
	uc := newUsecase(t, repo, msg)

	// Act
	err := uc.Register(context.Background(), validInput())

	// Assert
	var gerr *goerror.Error
	if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeUnexpected {
		t.Fatalf("expected unexpected failure, got %v", err)
	}
	if msg.publishCalls != 0 {
		t.Fatalf("event published despite failed insert")
	}
}

func TestRegisterPublishFailureDoesNotFailRegistration(t *testing.T) {
	// Arrange
	repo := newFakeRepoDB()
	msg := &fakeMessaging{err: errors.New("broker down")}
	uc := newUsecase(t, repo, msg)

	// Act
	err := uc.Register(context.Background(), validInput())

	// Assert
	if err != nil {
		t.Fatalf("register failed on publish error: %v", err)
	}
	if repo.createCalls != 1 {
		t.Fatalf("expected insert to happen")
	}
}

func TestRegisterDeterministicOutcome(t *testing.T) {
	// Arrange
	repo := newFakeRepoDB()
	repo.add(entity.Member{ID: 7, Name: "Someone Else", Email: "jane@example.com", Phone: "0123456789"})
	uc := newUsecase(t, repo, &fakeMessaging{})

	// Act & Assert: same input, same store, same outcome.
	for range 3 {
		err := uc.Register(context.Background(), validInput())

		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeConflict {
			t.Fatalf("expected stable conflict outcome, got %v", err)
		}
		if gerr.Fields()["email"] != "Email taken" {
			t.Fatalf("unexpected conflict fields: %v", gerr.Fields())
		}
	}
}

func TestMemberDetail(t *testing.T) {
	// Arrange
	repo := newFakeRepoDB()
	repo.add(entity.Member{ID: 42, Name: "Jane Doe", Email: "jane@example.com", Phone: "0123456789"})
	uc := newUsecase(t, repo, &fakeMessaging{})

	// Act
	out, err := uc.MemberDetail(context.Background(), usecase.MemberDetailInput{ID: 42})

	// Assert
	if err != nil {
		t.Fatalf("member detail failed: %v", err)
	}
	if out.Member.ID != 42 || out.Member.Email != "jane@example.com" {
		t.Fatalf("unexpected member: %+v", out.Member)
	}
}

func TestMemberDetailNotFound(t *testing.T) {
	// Arrange
	uc := newUsecase(t, newFakeRepoDB(), &fakeMessaging{})

	// Act
	_, err := uc.MemberDetail(context.Background(), usecase.MemberDetailInput{ID: 404})

	// Assert
	var gerr *goerror.Error
	if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemberList(t *testing.T) {
	// Arrange
	repo := newFakeRepoDB()
	repo.list = []entity.Member{
		{ID: 2, Name: "Alice Smith", Email: "alice@example.com"},
		{ID: 1, Name: "Bob Brown", Email: "bob@example.com"},
	}
	uc := newUsecase(t, repo, &fakeMessaging{})

	// Act
	out, err := uc.MemberList(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("member list failed: %v", err)
	}
	if len(out.Members) != 2 || out.Members[0].Name != "Alice Smith" {
		t.Fatalf("unexpected members: %+v", out.Members)
	}
}

func TestMemberListRepoFailure(t *testing.T) {
	// Arrange
	repo := newFakeRepoDB()
	repo.listErr = errors.New("connection reset")
	uc := newUsecase(t, repo, &fakeMessaging{})

	// Act
	_, err := uc.MemberList(context.Background())

	// Assert
	var gerr *goerror.Error
	if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeInternal {
		t.Fatalf("expected server error, got %v", err)
	}
}
