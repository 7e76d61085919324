package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"llmcorp/internal/model"
	"llmcorp/internal/repository"
	repoMocks "llmcorp/internal/repository/mocks"
)

func TestRecordService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		rec        *model.Employee
		setupMocks func(mRepo *repoMocks.MockRepository[model.Employee])
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "happy path",
			rec:  &model.Employee{Name: "Ada", Position: "Engineer"},
			setupMocks: func(mRepo *repoMocks.MockRepository[model.Employee]) {
				mRepo.On("Create", ctx, &model.Employee{Name: "Ada", Position: "Engineer"}).
					Return(&model.Employee{ID: 1, Name: "Ada", Position: "Engineer"}, nil)
			},
		},
		{
			name:       "validation error - nil record",
			setupMocks: func(mRepo *repoMocks.MockRepository[model.Employee]) {},
			wantErr:    ErrRecordNil,
		},
		{
			name: "repository error",
			rec:  &model.Employee{Name: "Ada", Position: "Engineer"},
			setupMocks: func(mRepo *repoMocks.MockRepository[model.Employee]) {
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErrMsg: "create record: db fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockRepository[model.Employee])
			svc := NewRecordService[model.Employee](mRepo)
			tt.setupMocks(mRepo)

			got, err := svc.Create(ctx, tt.rec)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
			default:
				assert.NoError(t, err)
				assert.Equal(t, int64(1), got.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestRecordService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		limit      int
		offset     int
		setupMocks func(mRepo *repoMocks.MockRepository[model.Task])
		wantErr    bool
		checkRes   func(t *testing.T, res *RecordListResult[model.Task])
	}{
		{
			name:  "happy path",
			limit: 10,
			setupMocks: func(mRepo *repoMocks.MockRepository[model.Task]) {
				mRepo.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0}).
					Return(&repository.PageResult[model.Task]{
						Items: []model.Task{{ID: 1}, {ID: 2}},
						Total: 2,
					}, nil)
			},
			checkRes: func(t *testing.T, res *RecordListResult[model.Task]) {
				assert.Len(t, res.Items, 2)
				assert.Equal(t, 2, res.Total)
			},
		},
		{
			name:   "pagination boundary - zero limit uses default",
			limit:  0,
			offset: -1,
			setupMocks: func(mRepo *repoMocks.MockRepository[model.Task]) {
				mRepo.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0}).
					Return(&repository.PageResult[model.Task]{Items: []model.Task{}}, nil)
			},
		},
		{
			name:   "pagination boundary - limit capped",
			limit:  1000,
			offset: 5,
			setupMocks: func(mRepo *repoMocks.MockRepository[model.Task]) {
				mRepo.On("List", ctx, repository.PageQuery{Limit: 100, Offset: 5}).
					Return(&repository.PageResult[model.Task]{Items: []model.Task{}}, nil)
			},
		},
		{
			name:  "repository error",
			limit: 10,
			setupMocks: func(mRepo *repoMocks.MockRepository[model.Task]) {
				mRepo.On("List", ctx, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockRepository[model.Task])
			svc := NewRecordService[model.Task](mRepo)
			tt.setupMocks(mRepo)

			res, err := svc.List(ctx, tt.limit, tt.offset)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, res)
			} else {
				assert.NoError(t, err)
				if tt.checkRes != nil {
					tt.checkRes(t, res)
				}
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestRecordService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         int64
		setupMocks func(mRepo *repoMocks.MockRepository[model.Model])
		wantErr    error
	}{
		{
			name: "happy path",
			id:   3,
			setupMocks: func(mRepo *repoMocks.MockRepository[model.Model]) {
				mRepo.On("FindByID", ctx, int64(3)).Return(&model.Model{ID: 3, Name: "llama"}, nil)
			},
		},
		{
			name:       "validation - non-positive id",
			id:         0,
			setupMocks: func(mRepo *repoMocks.MockRepository[model.Model]) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "not found - mapping sql.ErrNoRows",
			id:   9,
			setupMocks: func(mRepo *repoMocks.MockRepository[model.Model]) {
				mRepo.On("FindByID", ctx, int64(9)).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockRepository[model.Model])
			svc := NewRecordService[model.Model](mRepo)
			tt.setupMocks(mRepo)

			rec, err := svc.Get(ctx, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, rec)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, rec.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}

	t.Run("generic repository error passes through", func(t *testing.T) {
		mRepo := new(repoMocks.MockRepository[model.Model])
		mRepo.On("FindByID", ctx, int64(5)).Return(nil, errors.New("db fail"))

		_, err := NewRecordService[model.Model](mRepo).Get(ctx, 5)

		assert.EqualError(t, err, "db fail")
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestRecordService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         int64
		setupMocks func(mRepo *repoMocks.MockRepository[model.Task])
		wantErr    error
	}{
		{
			name: "happy path",
			id:   1,
			setupMocks: func(mRepo *repoMocks.MockRepository[model.Task]) {
				mRepo.On("Delete", ctx, int64(1)).Return(nil)
			},
		},
		{
			name:       "validation - negative id",
			id:         -1,
			setupMocks: func(mRepo *repoMocks.MockRepository[model.Task]) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "not found",
			id:   2,
			setupMocks: func(mRepo *repoMocks.MockRepository[model.Task]) {
				mRepo.On("Delete", ctx, int64(2)).Return(sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockRepository[model.Task])
			svc := NewRecordService[model.Task](mRepo)
			tt.setupMocks(mRepo)

			err := svc.Delete(ctx, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			mRepo.AssertExpectations(t)
		})
	}
}
