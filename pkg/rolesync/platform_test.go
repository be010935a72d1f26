package rolesync

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/json"
	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/mock"
)

const (
	testGuildID   snowflake.ID = 100
	testChannelID snowflake.ID = 200
	testDMID      snowflake.ID = 201
	testMenuID    snowflake.ID = 300
	testOtherID   snowflake.ID = 301
	testUserID    snowflake.ID = 400
)

var errUnknownMember = errors.New("unknown member")

type mutation struct {
	GuildID snowflake.ID
	UserID  snowflake.ID
	RoleID  snowflake.ID
}

// fakePlatform is a single guild with mutable member roles.
type fakePlatform struct {
	mu       sync.Mutex
	messages map[snowflake.ID]string
	roles    []discord.Role
	members  map[snowflake.ID][]snowflake.ID
	added    []mutation
	removed  []mutation
}

func newFakePlatform(roles ...discord.Role) *fakePlatform {
	return &fakePlatform{
		messages: map[snowflake.ID]string{
			testMenuID:  "Please pick your role — votre rôle menu below",
			testOtherID: "unrelated announcement",
		},
		roles:   roles,
		members: map[snowflake.ID][]snowflake.ID{testUserID: nil},
	}
}

func (f *fakePlatform) member(userID snowflake.ID) discord.Member {
	f.mu.Lock()
	defer f.mu.Unlock()
	return discord.Member{
		User:    discord.User{ID: userID},
		RoleIDs: slices.Clone(f.members[userID]),
	}
}

func (f *fakePlatform) Message(_ context.Context, channelID snowflake.ID, messageID snowflake.ID) (*discord.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	content, ok := f.messages[messageID]
	if !ok {
		return nil, errors.New("unknown message")
	}
	return &discord.Message{ID: messageID, ChannelID: channelID, Content: content}, nil
}

func (f *fakePlatform) ChannelGuild(_ context.Context, channelID snowflake.ID) (snowflake.ID, bool, error) {
	if channelID == testDMID {
		return 0, false, nil
	}
	return testGuildID, true, nil
}

func (f *fakePlatform) Roles(context.Context, snowflake.ID) ([]discord.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.roles), nil
}

func (f *fakePlatform) Member(_ context.Context, _ snowflake.ID, userID snowflake.ID) (*discord.Member, error) {
	f.mu.Lock()
	_, ok := f.members[userID]
	f.mu.Unlock()
	if !ok {
		return nil, errUnknownMember
	}
	return json.Ptr(f.member(userID)), nil
}

func (f *fakePlatform) AddRole(_ context.Context, guildID snowflake.ID, userID snowflake.ID, roleID snowflake.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, mutation{GuildID: guildID, UserID: userID, RoleID: roleID})
	if !slices.Contains(f.members[userID], roleID) {
		f.members[userID] = append(f.members[userID], roleID)
	}
	return nil
}

func (f *fakePlatform) RemoveRole(_ context.Context, guildID snowflake.ID, userID snowflake.ID, roleID snowflake.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, mutation{GuildID: guildID, UserID: userID, RoleID: roleID})
	f.members[userID] = slices.DeleteFunc(f.members[userID], func(id snowflake.ID) bool {
		return id == roleID
	})
	return nil
}

// mockPlatform is used where a test needs a platform call to fail.
type mockPlatform struct {
	mock.Mock
}

func (m *mockPlatform) Message(ctx context.Context, channelID snowflake.ID, messageID snowflake.ID) (*discord.Message, error) {
	args := m.Called(ctx, channelID, messageID)
	message, _ := args.Get(0).(*discord.Message)
	return message, args.Error(1)
}

func (m *mockPlatform) ChannelGuild(ctx context.Context, channelID snowflake.ID) (snowflake.ID, bool, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).(snowflake.ID), args.Bool(1), args.Error(2)
}

func (m *mockPlatform) Roles(ctx context.Context, guildID snowflake.ID) ([]discord.Role, error) {
	args := m.Called(ctx, guildID)
	roles, _ := args.Get(0).([]discord.Role)
	return roles, args.Error(1)
}

func (m *mockPlatform) Member(ctx context.Context, guildID snowflake.ID, userID snowflake.ID) (*discord.Member, error) {
	args := m.Called(ctx, guildID, userID)
	member, _ := args.Get(0).(*discord.Member)
	return member, args.Error(1)
}

func (m *mockPlatform) AddRole(ctx context.Context, guildID snowflake.ID, userID snowflake.ID, roleID snowflake.ID) error {
	return m.Called(ctx, guildID, userID, roleID).Error(0)
}

func (m *mockPlatform) RemoveRole(ctx context.Context, guildID snowflake.ID, userID snowflake.ID, roleID snowflake.ID) error {
	return m.Called(ctx, guildID, userID, roleID).Error(0)
}

type recordingAck struct {
	messages []string
	err      error
}

func (a *recordingAck) Acknowledge(_ context.Context, content string) error {
	a.messages = append(a.messages, content)
	return a.err
}

func testConfig() Config {
	return Config{
		TriggerPhrase: "votre rôle",
		AllowedRoles:  []string{"baaaaaaaa", "boooo"},
	}
}

func customEmoji(id snowflake.ID, name string) discord.PartialEmoji {
	return discord.PartialEmoji{ID: &id, Name: &name}
}

func unicodeEmoji(name string) discord.PartialEmoji {
	return discord.PartialEmoji{Name: &name}
}
