package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-service-core/command"
	"github.com/MKhiriev/go-service-core/errs"
	"github.com/MKhiriev/go-service-core/internal/mock"
	"github.com/MKhiriev/go-service-core/settings"
)

// newNamedMocks returns one mock per name; Name may be called any number of
// times and nothing else is expected unless a test adds it.
func newNamedMocks(ctrl *gomock.Controller, names ...string) ([]command.Command, []*mock.MockCommand) {
	cmds := make([]command.Command, 0, len(names))
	mocks := make([]*mock.MockCommand, 0, len(names))
	for _, name := range names {
		m := mock.NewMockCommand(ctrl)
		m.EXPECT().Name().Return(name).AnyTimes()
		cmds = append(cmds, m)
		mocks = append(mocks, m)
	}
	return cmds, mocks
}

// ── HandleAll ─────────────────────────────────────────────────────────────────

// TestHandleAll_InvokesOnlyMatchingCommand verifies that for every k the
// handler of command k, and no other, is invoked.
func TestHandleAll_InvokesOnlyMatchingCommand(t *testing.T) {
	names := []string{"migrate", "serve", "version"}

	for k, name := range names {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cmds, mocks := newNamedMocks(ctrl, names...)

			matches := &command.Matches{Name: name, Args: []string{"x"}}
			mocks[k].EXPECT().
				Handle(gomock.Any(), matches, gomock.Any()).
				Return(nil)

			err := command.HandleAll(context.Background(), matches, cmds, settings.Default())
			require.NoError(t, err)
		})
	}
}

// TestHandleAll_NoSubcommandIsNoop verifies that nothing is invoked when
// the invocation names no subcommand.
func TestHandleAll_NoSubcommandIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds, _ := newNamedMocks(ctrl, "serve", "version")

	assert.NoError(t, command.HandleAll(context.Background(), &command.Matches{}, cmds, settings.Default()))
	assert.NoError(t, command.HandleAll(context.Background(), nil, cmds, settings.Default()))
}

// TestHandleAll_UnknownCommand verifies the error kind and that the message
// carries the invoked name verbatim.
func TestHandleAll_UnknownCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds, _ := newNamedMocks(ctrl, "serve", "version")

	err := command.HandleAll(context.Background(), &command.Matches{Name: "Serve"}, cmds, settings.Default())

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrCommand)
	assert.Contains(t, err.Error(), "Unknown command: Serve")
}

// TestHandleAll_EmptyRegistry verifies that any name fails when nothing is
// registered.
func TestHandleAll_EmptyRegistry(t *testing.T) {
	err := command.HandleAll(context.Background(), &command.Matches{Name: "anything"}, nil, settings.Default())

	assert.ErrorIs(t, err, errs.ErrCommand)
	assert.Contains(t, err.Error(), "anything")
}

// TestHandleAll_FirstMatchWins verifies that with duplicate names only the
// first command in list order is reachable.
func TestHandleAll_FirstMatchWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds, mocks := newNamedMocks(ctrl, "dup", "dup")

	mocks[0].EXPECT().Handle(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	err := command.HandleAll(context.Background(), &command.Matches{Name: "dup"}, cmds, settings.Default())
	require.NoError(t, err)
}

// TestHandleAll_PassesHandlerErrorThrough verifies that the handler's error
// is returned unchanged.
func TestHandleAll_PassesHandlerErrorThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds, mocks := newNamedMocks(ctrl, "serve")

	handlerErr := errors.New("port already in use")
	mocks[0].EXPECT().Handle(gomock.Any(), gomock.Any(), gomock.Any()).Return(handlerErr)

	err := command.HandleAll(context.Background(), &command.Matches{Name: "serve"}, cmds, settings.Default())
	assert.Same(t, handlerErr, err)
}

// TestHandleAll_HandlerGetsSettingsCopy verifies that the handler sees equal
// settings and cannot mutate the caller's value.
func TestHandleAll_HandlerGetsSettingsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds, mocks := newNamedMocks(ctrl, "serve")

	s := settings.Default()
	s.Database.URL = "postgres://db"

	mocks[0].EXPECT().
		Handle(gomock.Any(), gomock.Any(), gomock.Eq(s)).
		DoAndReturn(func(_ context.Context, _ *command.Matches, got *settings.Settings) error {
			assert.NotSame(t, s, got)
			got.Database.URL = "mutated"
			return nil
		})

	require.NoError(t, command.HandleAll(context.Background(), &command.Matches{Name: "serve"}, cmds, s))
	assert.Equal(t, "postgres://db", s.Database.URL)
}

// ── ConfigureAll with mocks ───────────────────────────────────────────────────

// TestConfigureAll_CallsConfigureOncePerCommand verifies that the root gets
// exactly one subcommand per registered command.
func TestConfigureAll_CallsConfigureOncePerCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds, mocks := newNamedMocks(ctrl, "serve", "version")

	for i, m := range mocks {
		m.EXPECT().About().Return("about").AnyTimes()
		m.EXPECT().Configure().Return(command.Default(cmds[i])).Times(1)
	}

	root, err := command.ConfigureAll("svc", "Example service", cmds)
	require.NoError(t, err)

	require.Len(t, root.Commands(), 2)
	sub, _, err := root.Find([]string{"version"})
	require.NoError(t, err)
	assert.Equal(t, "version", sub.Name())
}
