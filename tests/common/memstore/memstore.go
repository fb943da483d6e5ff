//go:build unit || e2e

// Package memstore is an in-memory UnitOfWork for usecase tests. Bookings
// are filtered with booking.Spec.Matches, the same predicates the postgres
// adapter translates to SQL.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"gin-shareit/internal/domain/booking"
	"gin-shareit/internal/domain/comment"
	"gin-shareit/internal/domain/item"
	"gin-shareit/internal/domain/itemrequest"
	"gin-shareit/internal/domain/user"
	"gin-shareit/internal/infra"
	"gin-shareit/internal/usecase/queries"
	"gin-shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type userRow struct {
	id           uuid.UUID
	name, email  string
	passwordHash string
	seq          int
}

type itemRow struct {
	id, ownerID       uuid.UUID
	name, description string
	available         bool
	requestID         *uuid.UUID
	seq               int
}

type bookingRow struct {
	id, itemID, bookerID uuid.UUID
	start, end           time.Time
	status               booking.Status
}

type commentRow struct {
	id, itemID, authorID uuid.UUID
	text                 string
	createdAt            time.Time
}

type requestRow struct {
	id, requesterID uuid.UUID
	description     string
	createdAt       time.Time
}

type state struct {
	users    map[uuid.UUID]userRow
	items    map[uuid.UUID]itemRow
	bookings map[uuid.UUID]bookingRow
	requests map[uuid.UUID]requestRow
	comments []commentRow
	seq      int
}

func (s state) clone() state {
	return state{
		users:    maps.Clone(s.users),
		items:    maps.Clone(s.items),
		bookings: maps.Clone(s.bookings),
		requests: maps.Clone(s.requests),
		comments: slices.Clone(s.comments),
		seq:      s.seq,
	}
}

// Store holds all rows; Within runs fn against a copy and keeps it only
// when fn succeeds.
type Store struct {
	mu sync.Mutex
	st state
}

func New() *Store {
	return &Store{st: state{
		users:    map[uuid.UUID]userRow{},
		items:    map[uuid.UUID]itemRow{},
		bookings: map[uuid.UUID]bookingRow{},
		requests: map[uuid.UUID]requestRow{},
	}}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(ctx, &tx{st: &work}); err != nil {
		return err
	}
	s.st = work
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	return fn(ctx, &tx{st: &snapshot})
}

// BookingCount reports how many bookings are stored.
func (s *Store) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.bookings)
}

type tx struct {
	st *state
}

func (t *tx) Users() shared.UserRepository       { return userRepo{t.st} }
func (t *tx) Items() shared.ItemRepository       { return itemRepo{t.st} }
func (t *tx) Bookings() shared.BookingRepository { return bookingRepo{t.st} }
func (t *tx) Comments() shared.CommentRepository { return commentRepo{t.st} }
func (t *tx) Requests() shared.RequestRepository { return requestRepo{t.st} }

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

func stillReferenced(what string) error {
	return infra.WrapRepoErr(what+" is still referenced", nil, infra.KindForeignKeyViolated)
}

// hasBookings reports whether any booking points at the item or the user,
// the rows bookings restrict deletion of.
func (st *state) hasBookings(keep func(bookingRow) bool) bool {
	for _, b := range st.bookings {
		if keep(b) {
			return true
		}
	}
	return false
}

func (st *state) next() int {
	st.seq++
	return st.seq
}

// users

type userRepo struct{ st *state }

func (r userRepo) Create(_ context.Context, u *user.User) error {
	for _, row := range r.st.users {
		if row.email == u.Email().Value() {
			return infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey)
		}
	}
	r.st.users[u.ID()] = userRow{
		id: u.ID(), name: u.Name().Value(), email: u.Email().Value(),
		passwordHash: u.PasswordHash(), seq: r.st.next(),
	}
	return nil
}

func (r userRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	row, ok := r.st.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return row.toDomain(), nil
}

func (r userRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, row := range r.st.users {
		if row.email == email {
			return row.toDomain(), nil
		}
	}
	return nil, notFound("user")
}

func (r userRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.st.users[id]
	return ok, nil
}

func (r userRepo) Update(_ context.Context, u *user.User) error {
	row, ok := r.st.users[u.ID()]
	if !ok {
		return notFound("user")
	}
	for id, other := range r.st.users {
		if id != u.ID() && other.email == u.Email().Value() {
			return infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey)
		}
	}
	row.name, row.email = u.Name().Value(), u.Email().Value()
	r.st.users[u.ID()] = row
	return nil
}

// Delete cascades to the user's items, comments and requests like the
// schema does, and fails while bookings still reference the user or one of
// the user's items.
func (r userRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.st.users[id]; !ok {
		return notFound("user")
	}
	referenced := r.st.hasBookings(func(b bookingRow) bool {
		return b.bookerID == id || r.st.items[b.itemID].ownerID == id
	})
	if referenced {
		return stillReferenced("user")
	}

	for itemID, it := range r.st.items {
		if it.ownerID == id {
			r.st.dropItem(itemID)
		}
	}
	r.st.comments = slices.DeleteFunc(r.st.comments, func(c commentRow) bool { return c.authorID == id })
	for reqID, req := range r.st.requests {
		if req.requesterID == id {
			r.st.dropRequest(reqID)
		}
	}
	delete(r.st.users, id)
	return nil
}

func (row userRow) toDomain() *user.User {
	return user.Reconstruct(row.id, row.name, row.email, row.passwordHash, time.Time{}, time.Time{})
}

// items

type itemRepo struct{ st *state }

func (r itemRepo) Create(_ context.Context, it *item.Item) error {
	if id := it.RequestID(); id != nil {
		if _, ok := r.st.requests[*id]; !ok {
			return infra.WrapRepoErr("item references a missing request", nil, infra.KindForeignKeyViolated)
		}
	}
	r.st.items[it.ID()] = itemRow{
		id: it.ID(), ownerID: it.OwnerID(), name: it.Name(), description: it.Description(),
		available: it.Available(), requestID: it.RequestID(), seq: r.st.next(),
	}
	return nil
}

func (r itemRepo) FindByID(_ context.Context, id uuid.UUID) (*item.Item, error) {
	row, ok := r.st.items[id]
	if !ok {
		return nil, notFound("item")
	}
	return row.toDomain(), nil
}

func (r itemRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.st.items[id]
	return ok, nil
}

func (r itemRepo) Update(_ context.Context, it *item.Item) error {
	row, ok := r.st.items[it.ID()]
	if !ok {
		return notFound("item")
	}
	row.name, row.description, row.available = it.Name(), it.Description(), it.Available()
	r.st.items[it.ID()] = row
	return nil
}

func (r itemRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.st.items[id]; !ok {
		return notFound("item")
	}
	if r.st.hasBookings(func(b bookingRow) bool { return b.itemID == id }) {
		return stillReferenced("item")
	}
	r.st.dropItem(id)
	return nil
}

func (st *state) dropItem(id uuid.UUID) {
	delete(st.items, id)
	st.comments = slices.DeleteFunc(st.comments, func(c commentRow) bool { return c.itemID == id })
}

func (r itemRepo) ListByRequests(_ context.Context, requestIDs []uuid.UUID) ([]*item.Item, error) {
	return r.filter(shared.Page{Size: len(r.st.items)}, func(row itemRow) bool {
		return row.requestID != nil && slices.Contains(requestIDs, *row.requestID)
	}), nil
}

func (r itemRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, page shared.Page) ([]*item.Item, error) {
	return r.filter(page, func(row itemRow) bool { return row.ownerID == ownerID }), nil
}

func (r itemRepo) Search(_ context.Context, text string, page shared.Page) ([]*item.Item, error) {
	needle := strings.ToLower(text)
	return r.filter(page, func(row itemRow) bool {
		return row.available &&
			(strings.Contains(strings.ToLower(row.name), needle) ||
				strings.Contains(strings.ToLower(row.description), needle))
	}), nil
}

func (r itemRepo) filter(page shared.Page, keep func(itemRow) bool) []*item.Item {
	var rows []itemRow
	for _, row := range r.st.items {
		if keep(row) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })

	out := []*item.Item{}
	for _, row := range window(rows, page) {
		out = append(out, row.toDomain())
	}
	return out
}

func (row itemRow) toDomain() *item.Item {
	return item.Reconstruct(row.id, row.ownerID, row.name, row.description, row.available, row.requestID, time.Time{})
}

// bookings

type bookingRepo struct{ st *state }

func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if _, ok := r.st.items[b.ItemID()]; !ok {
		return infra.WrapRepoErr("booking references a missing item", nil, infra.KindForeignKeyViolated)
	}
	r.st.bookings[b.ID()] = toBookingRow(b)
	return nil
}

func (r bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, ok := r.st.bookings[id]
	if !ok {
		return nil, notFound("booking")
	}
	return row.toDomain(), nil
}

func (r bookingRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.FindByID(ctx, id)
}

func (r bookingRepo) UpdateStatus(_ context.Context, b *booking.Booking) error {
	row, ok := r.st.bookings[b.ID()]
	if !ok {
		return notFound("booking")
	}
	row.status = b.Status()
	r.st.bookings[b.ID()] = row
	return nil
}

func (r bookingRepo) FindAcceptedByItems(_ context.Context, itemIDs []uuid.UUID) ([]*booking.Booking, error) {
	spec := booking.WithStatus(booking.StatusWaiting, booking.StatusApproved)
	out := []*booking.Booking{}
	for _, c := range r.st.candidates() {
		if slices.Contains(itemIDs, c.Booking.ItemID()) && spec.Matches(c) {
			out = append(out, c.Booking)
		}
	}
	return out, nil
}

func (r bookingRepo) CountPrior(_ context.Context, itemID, userID uuid.UUID, now time.Time) (int, error) {
	spec := booking.EndedBefore(itemID, userID, now)
	count := 0
	for _, c := range r.st.candidates() {
		if spec.Matches(c) {
			count++
		}
	}
	return count, nil
}

// candidates lists bookings with their item owners, oldest start first.
func (st *state) candidates() []booking.Candidate {
	out := make([]booking.Candidate, 0, len(st.bookings))
	for _, row := range st.bookings {
		out = append(out, booking.Candidate{Booking: row.toDomain(), OwnerID: st.items[row.itemID].ownerID})
	}
	sort.Slice(out, func(i, j int) bool {
		si, sj := out[i].Booking.Start(), out[j].Booking.Start()
		if si.Equal(sj) {
			return out[i].Booking.ID().String() < out[j].Booking.ID().String()
		}
		return si.Before(sj)
	})
	return out
}

func toBookingRow(b *booking.Booking) bookingRow {
	return bookingRow{
		id: b.ID(), itemID: b.ItemID(), bookerID: b.BookerID(),
		start: b.Start(), end: b.End(), status: b.Status(),
	}
}

func (row bookingRow) toDomain() *booking.Booking {
	return booking.Reconstruct(row.id, row.itemID, row.bookerID, row.start, row.end, row.status)
}

// comments

type commentRepo struct{ st *state }

func (r commentRepo) Create(_ context.Context, c *comment.Comment) error {
	r.st.comments = append(r.st.comments, commentRow{
		id: c.ID(), itemID: c.ItemID(), authorID: c.AuthorID(),
		text: c.Text().String(), createdAt: c.CreatedAt(),
	})
	return nil
}

func (r commentRepo) ListByItems(_ context.Context, itemIDs []uuid.UUID) ([]shared.CommentRecord, error) {
	out := []shared.CommentRecord{}
	for _, c := range r.st.comments {
		if slices.Contains(itemIDs, c.itemID) {
			out = append(out, shared.CommentRecord{
				ID: c.id, ItemID: c.itemID, AuthorID: c.authorID,
				AuthorName: r.st.users[c.authorID].name,
				Text:       c.text, CreatedAt: c.createdAt,
			})
		}
	}
	return out, nil
}

// requests

type requestRepo struct{ st *state }

func (r requestRepo) Create(_ context.Context, req *itemrequest.ItemRequest) error {
	if _, ok := r.st.users[req.RequesterID()]; !ok {
		return infra.WrapRepoErr("request references a missing user", nil, infra.KindForeignKeyViolated)
	}
	r.st.requests[req.ID()] = requestRow{
		id: req.ID(), requesterID: req.RequesterID(),
		description: req.Description(), createdAt: req.CreatedAt(),
	}
	return nil
}

func (r requestRepo) FindByID(_ context.Context, id uuid.UUID) (*itemrequest.ItemRequest, error) {
	row, ok := r.st.requests[id]
	if !ok {
		return nil, notFound("item request")
	}
	return row.toDomain(), nil
}

func (r requestRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.st.requests[id]
	return ok, nil
}

func (r requestRepo) ListByRequester(_ context.Context, requesterID uuid.UUID) ([]*itemrequest.ItemRequest, error) {
	rows := r.st.sortedRequests(func(row requestRow) bool { return row.requesterID == requesterID })
	return requestsToDomain(rows), nil
}

func (r requestRepo) ListOthers(_ context.Context, userID uuid.UUID, page shared.Page) ([]*itemrequest.ItemRequest, error) {
	rows := r.st.sortedRequests(func(row requestRow) bool { return row.requesterID != userID })
	return requestsToDomain(window(rows, page)), nil
}

// sortedRequests returns matching requests, newest first.
func (st *state) sortedRequests(keep func(requestRow) bool) []requestRow {
	var rows []requestRow
	for _, row := range st.requests {
		if keep(row) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].createdAt.Equal(rows[j].createdAt) {
			return rows[i].id.String() > rows[j].id.String()
		}
		return rows[i].createdAt.After(rows[j].createdAt)
	})
	return rows
}

// dropRequest deletes the request and unlinks the items answering it.
func (st *state) dropRequest(id uuid.UUID) {
	delete(st.requests, id)
	for itemID, it := range st.items {
		if it.requestID != nil && *it.requestID == id {
			it.requestID = nil
			st.items[itemID] = it
		}
	}
}

func requestsToDomain(rows []requestRow) []*itemrequest.ItemRequest {
	out := []*itemrequest.ItemRequest{}
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}

func (row requestRow) toDomain() *itemrequest.ItemRequest {
	return itemrequest.Reconstruct(row.id, row.requesterID, row.description, row.createdAt)
}

// read stores

// BookingReadStore answers booking queries from the committed state.
func (s *Store) BookingReadStore() queries.BookingReadStore {
	return bookingReadStore{s}
}

// UserReadStore answers user queries from the committed state.
func (s *Store) UserReadStore() queries.UserReadStore {
	return userReadStore{s}
}

type bookingReadStore struct{ s *Store }

func (r bookingReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row, ok := r.s.st.bookings[id]
	if !ok {
		return nil, notFound("booking")
	}
	return r.s.st.view(row.toDomain()), nil
}

func (r bookingReadStore) List(_ context.Context, spec booking.Spec, page shared.Page) ([]*queries.BookingView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var matched []booking.Candidate
	for _, c := range r.s.st.candidates() {
		if spec.Matches(c) {
			matched = append(matched, c)
		}
	}
	slices.Reverse(matched)

	out := []*queries.BookingView{}
	for _, c := range window(matched, page) {
		out = append(out, r.s.st.view(c.Booking))
	}
	return out, nil
}

func (st *state) view(b *booking.Booking) *queries.BookingView {
	it := st.items[b.ItemID()]
	return &queries.BookingView{
		ID:     b.ID(),
		Start:  b.Start(),
		End:    b.End(),
		Status: b.Status().String(),
		Item: queries.BookingItemView{
			ID: it.id, Name: it.name, Description: it.description, Available: it.available,
		},
		Booker:      queries.BookingUserView{ID: b.BookerID(), Name: st.users[b.BookerID()].name},
		ItemOwnerID: it.ownerID,
	}
}

type userReadStore struct{ s *Store }

func (r userReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.UserView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row, ok := r.s.st.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return &queries.UserView{ID: row.id, Name: row.name, Email: row.email}, nil
}

func (r userReadStore) FindByEmail(_ context.Context, email string) (*queries.UserView, string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, row := range r.s.st.users {
		if row.email == email {
			return &queries.UserView{ID: row.id, Name: row.name, Email: row.email}, row.passwordHash, nil
		}
	}
	return nil, "", notFound("user")
}

func (r userReadStore) List(_ context.Context, page shared.Page) ([]*queries.UserView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rows := slices.Collect(maps.Values(r.s.st.users))
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })

	out := []*queries.UserView{}
	for _, row := range window(rows, page) {
		out = append(out, &queries.UserView{ID: row.id, Name: row.name, Email: row.email})
	}
	return out, nil
}

func window[T any](rows []T, page shared.Page) []T {
	if page.Offset >= len(rows) {
		return nil
	}
	end := min(page.Offset+page.Size, len(rows))
	return rows[page.Offset:end]
}

// seeding

// SeedUser stores a user and returns its id.
func (s *Store) SeedUser(name, email string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.st.users[id] = userRow{id: id, name: name, email: email, passwordHash: "hashed_password", seq: s.st.next()}
	return id
}

// SeedItem stores an item of ownerID and returns its id.
func (s *Store) SeedItem(ownerID uuid.UUID, name string, available bool) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.st.items[id] = itemRow{
		id: id, ownerID: ownerID, name: name, description: name + " for rent",
		available: available, seq: s.st.next(),
	}
	return id
}

// SeedRequest stores an item request of requesterID created at createdAt.
func (s *Store) SeedRequest(requesterID uuid.UUID, description string, createdAt time.Time) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.st.requests[id] = requestRow{id: id, requesterID: requesterID, description: description, createdAt: createdAt}
	return id
}

// RemoveItem deletes an item row without the booking check, leaving its
// bookings dangling.
func (s *Store) RemoveItem(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.st.items, id)
}

// SeedBooking stores b as is, bypassing period checks.
func (s *Store) SeedBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.bookings[b.ID()] = toBookingRow(b)
}
