package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/jose-valero/modtools-bot/internal/domain"
)

type fakeSettings struct {
	values map[string]int64
	reads  int
	writes int
	err    error
}

func newFakeSettings() *fakeSettings { return &fakeSettings{values: map[string]int64{}} }

func (f *fakeSettings) GetInt(_ context.Context, guildID, key string) (int64, bool, error) {
	f.reads++
	if f.err != nil {
		return 0, false, f.err
	}
	v, ok := f.values[guildID+"/"+key]
	return v, ok, nil
}

func (f *fakeSettings) SetInt(_ context.Context, guildID, key string, value int64) error {
	f.writes++
	if f.err != nil {
		return f.err
	}
	f.values[guildID+"/"+key] = value
	return nil
}

type fakeRecords struct {
	reports []domain.Report
	warns   []domain.Warn
	err     error
}

func (f *fakeRecords) CreateReport(_ context.Context, r domain.Report) error {
	if f.err != nil {
		return f.err
	}
	f.reports = append(f.reports, r)
	return nil
}

func (f *fakeRecords) CreateWarn(_ context.Context, w domain.Warn) error {
	if f.err != nil {
		return f.err
	}
	f.warns = append(f.warns, w)
	return nil
}

type sentDM struct{ userID, content string }

type fakePlatform struct {
	roles     map[string]domain.Role // por id
	dmErr     error
	dms       []sentDM
	changelog []string
}

func newFakePlatform() *fakePlatform { return &fakePlatform{roles: map[string]domain.Role{}} }

func (f *fakePlatform) addRole(id int64, name string) domain.Role {
	r := domain.Role{ID: strconv.FormatInt(id, 10), Name: name}
	f.roles[r.ID] = r
	return r
}

func (f *fakePlatform) ResolveRole(_ context.Context, _ string, roleID string) (*domain.Role, error) {
	r, ok := f.roles[roleID]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (f *fakePlatform) SendDirect(_ context.Context, userID, content string) domain.Delivery {
	if f.dmErr != nil {
		return domain.Failed(f.dmErr)
	}
	f.dms = append(f.dms, sentDM{userID, content})
	return domain.Delivered()
}

func (f *fakePlatform) SendChangelog(_ context.Context, _ string, content string) error {
	f.changelog = append(f.changelog, content)
	return nil
}

type fakeResponder struct {
	replies []string
	err     error
}

func (f *fakeResponder) Reply(_ context.Context, content string) error {
	if f.err != nil {
		return f.err
	}
	f.replies = append(f.replies, content)
	return nil
}

var errDMForbidden = errors.New("HTTP 403 Forbidden: Cannot send messages to this user")

func nullLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

func invocation(r *fakeResponder) Invocation {
	return Invocation{
		GuildID:   "100",
		GuildName: "Morpheus",
		Author:    domain.Member{ID: "1", Username: "mod"},
		Reply:     r,
	}
}
