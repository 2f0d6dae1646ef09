package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"

	domainFile "cloud-storage-api/internal/domain/file"
	domainToken "cloud-storage-api/internal/domain/token"
	domainUser "cloud-storage-api/internal/domain/user"
	"cloud-storage-api/internal/errs"
	"cloud-storage-api/internal/infrastructure/mq"
)

func notFoundErr(filename string) error {
	return fmt.Errorf("object %q: %w", filename, errs.ErrNotFound)
}

// newTestCounter builds an unregistered vector so parallel tests never
// collide in the default registry.
func newTestCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_counters"},
		[]string{"result"},
	)
}

type fakeMQ struct {
	in chan mq.Event
}

func newFakeMQ() *fakeMQ {
	return &fakeMQ{in: make(chan mq.Event, 64)}
}

func (f *fakeMQ) Connect(ctx context.Context, dsn string) error { return nil }
func (f *fakeMQ) Init() error                                   { return nil }
func (f *fakeMQ) PublisherWorker(ctx context.Context)           {}
func (f *fakeMQ) GetInputChan() chan mq.Event                   { return f.in }
func (f *fakeMQ) GetConn() *amqp091.Connection                  { return nil }

// drain returns every event published so far.
func (f *fakeMQ) drain() []mq.Event {
	var out []mq.Event
	for {
		select {
		case e := <-f.in:
			out = append(out, e)
		default:
			return out
		}
	}
}

type fakeBlob struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeBlob() *fakeBlob {
	return &fakeBlob{objects: make(map[string][]byte)}
}

func (b *fakeBlob) Exists(filename string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.objects[filename]
	return ok, nil
}

func (b *fakeBlob) Write(filename string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[filename] = append([]byte(nil), data...)
	return nil
}

func (b *fakeBlob) Read(filename string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.objects[filename]
	if !ok {
		return nil, notFoundErr(filename)
	}
	return data, nil
}

func (b *fakeBlob) Rename(oldFilename, newFilename string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.objects[oldFilename]
	if !ok {
		return notFoundErr(oldFilename)
	}
	b.objects[newFilename] = data
	delete(b.objects, oldFilename)
	return nil
}

func (b *fakeBlob) Remove(filename string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.objects[filename]; !ok {
		return notFoundErr(filename)
	}
	delete(b.objects, filename)
	return nil
}

type fakeFileRepo struct {
	mu     sync.Mutex
	nextID uint64
	files  map[uint64]*domainFile.File
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: make(map[uint64]*domainFile.File)}
}

func (r *fakeFileRepo) FetchFileByName(ctx context.Context, filename string) (*domainFile.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.files {
		if f.Filename == filename {
			cp := *f
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeFileRepo) FetchFilesByOwner(ctx context.Context, ownerID domainUser.ID, limit int) (domainFile.Files, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out domainFile.Files
	for id := uint64(1); id <= r.nextID; id++ {
		f, ok := r.files[id]
		if !ok || f.OwnerID != ownerID {
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		cp := *f
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeFileRepo) CreateFile(ctx context.Context, req *domainFile.File) (*domainFile.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	cp := *req
	cp.ID = domainFile.ID(r.nextID)
	r.files[r.nextID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeFileRepo) UpdateFilename(ctx context.Context, id domainFile.ID, newFilename string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.files[uint64(id)]
	if !ok {
		return notFoundErr(newFilename)
	}
	f.Filename = newFilename
	return nil
}

func (r *fakeFileRepo) DeleteFile(ctx context.Context, id domainFile.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.files[uint64(id)]; !ok {
		return notFoundErr("")
	}
	delete(r.files, uint64(id))
	return nil
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	nextID uint64
	tokens map[uint64]*domainToken.Token
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[uint64]*domainToken.Token)}
}

func (r *fakeTokenRepo) CreateToken(ctx context.Context, req *domainToken.Token) (*domainToken.Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	cp := *req
	cp.ID = domainToken.ID(r.nextID)
	r.tokens[r.nextID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeTokenRepo) FetchTokenByValue(ctx context.Context, value string) (*domainToken.Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if t.Value == value {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTokenRepo) FetchFirstActiveByUser(ctx context.Context, userID domainUser.ID) (*domainToken.Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id := uint64(1); id <= r.nextID; id++ {
		t, ok := r.tokens[id]
		if ok && t.UserID == userID && t.Active {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTokenRepo) DeactivateToken(ctx context.Context, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if t.Value == value {
			t.Active = false
		}
	}
	return nil
}

func (r *fakeTokenRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, t := range r.tokens {
		if t.ExpiresAt.Before(now) {
			delete(r.tokens, id)
			n++
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint64
	users  map[uint64]*domainUser.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]*domainUser.User)}
}

func (r *fakeUserRepo) FetchUserByID(ctx context.Context, id domainUser.ID) (*domainUser.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[uint64(id)]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FetchUserByLogin(ctx context.Context, login string) (*domainUser.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Login == login {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, req domainUser.User) (*domainUser.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	req.ID = domainUser.ID(r.nextID)
	cp := req
	r.users[r.nextID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, id domainUser.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, uint64(id))
	return nil
}
