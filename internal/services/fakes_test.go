package services

import (
	"context"
	"time"

	"rallypoint/internal/domain"
)

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byID      map[string]*domain.User
	byEmail   map[string]*domain.User
	getErr    error
	updateErr error
	nextID    string

	statusUpdates   map[string]string
	passwordUpdates map[string][2]string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:            make(map[string]*domain.User),
		byEmail:         make(map[string]*domain.User),
		nextID:          "created-1",
		statusUpdates:   make(map[string]string),
		passwordUpdates: make(map[string][2]string),
	}
}

func (f *fakeUserRepo) add(u *domain.User) {
	f.byID[u.ID] = u
	if u.Email != "" {
		f.byEmail[u.Email] = u
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	u.ID = f.nextID
	f.add(u)
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, u *domain.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	f.add(u)
	return nil
}

func (f *fakeUserRepo) UpdateStatus(ctx context.Context, id, status string) error {
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Status = status
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id, passwordHash, salt string) error {
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.Salt = salt
	f.passwordUpdates[id] = [2]string{passwordHash, salt}
	return nil
}

func (f *fakeUserRepo) ListVolunteers(ctx context.Context, params domain.PaginationParams) ([]*domain.User, int, error) {
	var users []*domain.User
	for _, u := range f.byID {
		if u.Role == domain.RoleVolunteer {
			users = append(users, u)
		}
	}
	return users, len(users), nil
}

// fakeEventRepo implements domain.EventRepository for tests.
type fakeEventRepo struct {
	byID     map[string]*domain.Event
	upcoming []*domain.Event
	getErr   error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[string]*domain.Event)}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	e.ID = "event-created-1"
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) ListUpcoming(ctx context.Context, now time.Time) ([]*domain.Event, error) {
	return f.upcoming, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, id string, patch domain.EventPatch, updatedAt time.Time) (*domain.Event, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Location != nil {
		e.Location = *patch.Location
	}
	if patch.SlotsAvailable != nil {
		e.SlotsAvailable = *patch.SlotsAvailable
	}
	e.UpdatedAt = updatedAt
	return e, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeRegistrationRepo implements domain.RegistrationRepository for tests.
type fakeRegistrationRepo struct {
	createErr error
	counts    map[string]int
	existing  map[string]*domain.Registration // key eventID+"/"+userID
	byUser    map[string][]*domain.Registration
	promoted  *domain.Registration
	deleteErr error
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{
		counts:   make(map[string]int),
		existing: make(map[string]*domain.Registration),
		byUser:   make(map[string][]*domain.Registration),
	}
}

func (f *fakeRegistrationRepo) CreateIfCapacity(ctx context.Context, reg *domain.Registration, capacity int) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.counts[reg.EventID] >= capacity {
		return domain.ErrEventFull
	}
	key := reg.EventID + "/" + reg.UserID
	if _, ok := f.existing[key]; ok {
		return domain.ErrAlreadyRegistered
	}
	reg.ID = "reg-created-1"
	f.existing[key] = reg
	f.counts[reg.EventID]++
	return nil
}

func (f *fakeRegistrationRepo) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	if reg, ok := f.existing[eventID+"/"+userID]; ok {
		return reg, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRegistrationRepo) CountByEventID(ctx context.Context, eventID string) (int, error) {
	return f.counts[eventID], nil
}

func (f *fakeRegistrationRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Registration, error) {
	return f.byUser[userID], nil
}

func (f *fakeRegistrationRepo) DeleteAndPromote(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	key := eventID + "/" + userID
	if _, ok := f.existing[key]; !ok {
		return nil, domain.ErrNotFound
	}
	delete(f.existing, key)
	f.counts[eventID]--
	return f.promoted, nil
}

// fakeWaitlistRepo implements domain.WaitlistRepository for tests.
type fakeWaitlistRepo struct {
	entries   map[string]*domain.WaitlistEntry // key eventID+"/"+userID
	createErr error
}

func newFakeWaitlistRepo() *fakeWaitlistRepo {
	return &fakeWaitlistRepo{entries: make(map[string]*domain.WaitlistEntry)}
}

func (f *fakeWaitlistRepo) Create(ctx context.Context, entry *domain.WaitlistEntry) error {
	if f.createErr != nil {
		return f.createErr
	}
	key := entry.EventID + "/" + entry.UserID
	if _, ok := f.entries[key]; ok {
		return domain.ErrAlreadyWaitlisted
	}
	entry.ID = "entry-created-1"
	f.entries[key] = entry
	return nil
}

func (f *fakeWaitlistRepo) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.WaitlistEntry, error) {
	if e, ok := f.entries[eventID+"/"+userID]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeWaitlistRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.WaitlistEntry, error) {
	var entries []*domain.WaitlistEntry
	for _, e := range f.entries {
		if e.EventID == eventID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// fakeHourLogRepo implements domain.HourLogRepository for tests.
type fakeHourLogRepo struct {
	created   []*domain.HourLog
	byUser    map[string][]*domain.HourLog
	pending   []*domain.HourLog
	statusSet map[string]string
	updateErr error
}

func newFakeHourLogRepo() *fakeHourLogRepo {
	return &fakeHourLogRepo{
		byUser:    make(map[string][]*domain.HourLog),
		statusSet: make(map[string]string),
	}
}

func (f *fakeHourLogRepo) Create(ctx context.Context, log *domain.HourLog) error {
	log.ID = "log-created-1"
	f.created = append(f.created, log)
	return nil
}

func (f *fakeHourLogRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.HourLog, error) {
	return f.byUser[userID], nil
}

func (f *fakeHourLogRepo) ListPending(ctx context.Context) ([]*domain.HourLog, error) {
	return f.pending, nil
}

func (f *fakeHourLogRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.statusSet[id] = status
	return nil
}

// fakeResetRepo implements domain.PasswordResetRepository for tests.
type fakeResetRepo struct {
	stored    map[string]string // tokenHash -> userID
	expiresAt time.Time
	createErr error
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{stored: make(map[string]string)}
}

func (f *fakeResetRepo) Create(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.stored[tokenHash] = userID
	f.expiresAt = expiresAt
	return nil
}

func (f *fakeResetRepo) Consume(ctx context.Context, tokenHash string) (string, error) {
	userID, ok := f.stored[tokenHash]
	if !ok {
		return "", domain.ErrNotFound
	}
	delete(f.stored, tokenHash)
	return userID, nil
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct {
	salt       string
	compareErr error
}

func (f *fakePasswordHasher) GenerateSalt() (string, error) {
	if f.salt != "" {
		return f.salt, nil
	}
	return "salt", nil
}

func (f *fakePasswordHasher) Hash(salt, password string) (string, error) {
	return "hash-" + password, nil
}

func (f *fakePasswordHasher) Compare(hash, salt, password string) error {
	return f.compareErr
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	token string
	err   error
}

func (f *fakeTokenIssuer) Issue(userID, email, role string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.token != "" {
		return f.token, nil
	}
	return "token-" + userID, nil
}

// fakeEmailService implements domain.EmailService for tests.
type fakeEmailService struct {
	welcomes []*domain.WelcomeEmailData
	resets   []*domain.PasswordResetEmailData
	sendErr  error
}

func (f *fakeEmailService) SendWelcome(ctx context.Context, data *domain.WelcomeEmailData) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.welcomes = append(f.welcomes, data)
	return nil
}

func (f *fakeEmailService) SendPasswordReset(ctx context.Context, data *domain.PasswordResetEmailData) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.resets = append(f.resets, data)
	return nil
}

// fakeGenerator implements domain.TextGenerator for tests.
type fakeGenerator struct {
	output string
	err    error
	prompt string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

// fakePictureStore implements domain.PictureStore for tests.
type fakePictureStore struct {
	url     string
	saveErr error
	saved   []string
}

func (f *fakePictureStore) Save(originalFilename string, data []byte) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saved = append(f.saved, originalFilename)
	if f.url != "" {
		return f.url, nil
	}
	return "/uploads/" + originalFilename, nil
}

// fakeMessageRepo implements domain.SupportMessageRepository for tests.
type fakeMessageRepo struct {
	byID      map[string]*domain.SupportMessage
	byUser    map[string][]*domain.SupportMessage
	replyErr  error
	markedIDs []string
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{
		byID:   make(map[string]*domain.SupportMessage),
		byUser: make(map[string][]*domain.SupportMessage),
	}
}

func (f *fakeMessageRepo) Create(ctx context.Context, msg *domain.SupportMessage) error {
	msg.ID = "msg-created-1"
	f.byID[msg.ID] = msg
	f.byUser[msg.UserID] = append(f.byUser[msg.UserID], msg)
	return nil
}

func (f *fakeMessageRepo) GetByID(ctx context.Context, id string) (*domain.SupportMessage, error) {
	if m, ok := f.byID[id]; ok {
		return m, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeMessageRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.SupportMessage, error) {
	return f.byUser[userID], nil
}

func (f *fakeMessageRepo) ListAll(ctx context.Context, params domain.PaginationParams) ([]*domain.SupportMessageWithSender, int, error) {
	var items []*domain.SupportMessageWithSender
	for _, m := range f.byID {
		items = append(items, &domain.SupportMessageWithSender{Message: m})
	}
	return items, len(items), nil
}

func (f *fakeMessageRepo) MarkRead(ctx context.Context, id string) error {
	m, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.Status = domain.MessageRead
	f.markedIDs = append(f.markedIDs, id)
	return nil
}

func (f *fakeMessageRepo) Reply(ctx context.Context, id, replyText string, repliedAt time.Time) error {
	if f.replyErr != nil {
		return f.replyErr
	}
	m, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.ReplyText = replyText
	m.RepliedAt = &repliedAt
	m.Status = domain.MessageReplied
	return nil
}
