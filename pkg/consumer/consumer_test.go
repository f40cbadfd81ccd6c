package consumer

import (
	"context"
	"testing"

	"github.com/glorpus-work/pulpctl/pkg/auth"
	"github.com/glorpus-work/pulpctl/pkg/command"
	mock_consumer "github.com/glorpus-work/pulpctl/pkg/consumer/mocks"
	"github.com/glorpus-work/pulpctl/pkg/errors"
	"github.com/glorpus-work/pulpctl/pkg/pulp"
	"github.com/glorpus-work/pulpctl/test/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExists(t *testing.T) {
	tests := []struct {
		name    string
		current *pulp.ConsumerRecord
		want    bool
	}{
		{name: "not registered", current: nil, want: false},
		{name: "registered as id", current: &pulp.ConsumerRecord{ID: "node-01"}, want: true},
		{name: "registered as other id", current: &pulp.ConsumerRecord{ID: "node-02"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			admin := mock_consumer.NewMockAdmin(ctrl)
			admin.EXPECT().Consumer(gomock.Any()).Return(tt.current, nil)

			got, err := NewReconciler(admin).Exists(context.Background(), "node-01")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExists_StatusFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := mock_consumer.NewMockAdmin(ctrl)
	admin.EXPECT().Consumer(gomock.Any()).Return(nil, &errors.OperationFailedError{Operation: "determine registration status", Output: "?"})

	_, err := NewReconciler(admin).Exists(context.Background(), "node-01")
	assert.ErrorIs(t, err, errors.ErrOperationFailed)
}

func TestEnsure(t *testing.T) {
	tests := []struct {
		name    string
		ensure  pulp.Ensure
		current *pulp.ConsumerRecord
		setup   func(admin *mock_consumer.MockAdmin)
		want    Result
	}{
		{
			name:   "register when missing",
			ensure: pulp.EnsurePresent,
			setup: func(admin *mock_consumer.MockAdmin) {
				admin.EXPECT().RegisterConsumer(gomock.Any(), "node-01").Return(nil)
			},
			want: Result{Changed: true, Actions: []string{"register"}},
		},
		{
			name:    "present and registered",
			ensure:  pulp.EnsurePresent,
			current: &pulp.ConsumerRecord{ID: "node-01"},
			want:    Result{},
		},
		{
			name:    "unregister when present",
			ensure:  pulp.EnsureAbsent,
			current: &pulp.ConsumerRecord{ID: "node-01"},
			setup: func(admin *mock_consumer.MockAdmin) {
				admin.EXPECT().UnregisterConsumer(gomock.Any()).Return(nil)
			},
			want: Result{Changed: true, Actions: []string{"unregister"}},
		},
		{
			name:    "absent leaves other registrations alone",
			ensure:  pulp.EnsureAbsent,
			current: &pulp.ConsumerRecord{ID: "node-02"},
			want:    Result{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			admin := mock_consumer.NewMockAdmin(ctrl)
			admin.EXPECT().Consumer(gomock.Any()).Return(tt.current, nil)
			if tt.setup != nil {
				tt.setup(admin)
			}

			got, err := NewReconciler(admin).Ensure(context.Background(), "node-01", tt.ensure)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnsure_AgainstServer(t *testing.T) {
	fake := testutil.NewFakePulp()
	admin := pulp.NewAdmin(command.NewRunner(fake, 0), auth.Credentials{Login: "admin", Password: "admin"}, pulp.Options{})
	r := NewReconciler(admin)
	ctx := context.Background()

	plan, err := r.Plan(ctx, "node-01", pulp.EnsurePresent)
	require.NoError(t, err)
	assert.True(t, plan.Changed)
	assert.Equal(t, "", fake.ConsumerID, "plan does not register")

	res, err := r.Ensure(ctx, "node-01", pulp.EnsurePresent)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, "node-01", fake.ConsumerID)

	res, err = r.Ensure(ctx, "node-01", pulp.EnsurePresent)
	require.NoError(t, err)
	assert.False(t, res.Changed)

	res, err = r.Ensure(ctx, "node-01", pulp.EnsureAbsent)
	require.NoError(t, err)
	assert.Equal(t, []string{"unregister"}, res.Actions)
	assert.Equal(t, "", fake.ConsumerID)
}

func TestRegister_Failure(t *testing.T) {
	fake := testutil.NewFakePulp()
	fake.ConsumerID = "node-02"
	admin := pulp.NewAdmin(command.NewRunner(fake, 0), auth.Credentials{Login: "admin", Password: "admin"}, pulp.Options{})

	err := NewReconciler(admin).Register(context.Background(), "node-01")
	var opErr *errors.OperationFailedError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "register consumer", opErr.Operation)
	assert.Contains(t, opErr.Output, "already been registered")
}
