package service

import (
	"context"
	"testing"
	"time"

	"eventmarket/internal/dao"
	"eventmarket/internal/data"
	"eventmarket/internal/feed"
	"eventmarket/internal/model"
	"eventmarket/pkg/config"
	"eventmarket/pkg/consts"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) (*data.BaseData, sqlmock.Sqlmock) {
	t.Helper()
	config.SysConfig = &config.Config{}
	config.SysConfig.SetDefaults()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return &data.BaseData{BizDB: gdb}, mock
}

func newTestBus(t *testing.T) *feed.Bus {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return feed.NewBus(&data.BaseData{Rdb: rdb})
}

func newNotificationService(t *testing.T) (*NotificationService, sqlmock.Sqlmock, *feed.Bus) {
	t.Helper()
	baseData, mock := newTestDB(t)
	bus := newTestBus(t)
	svc := NewNotificationService(
		dao.NewProfileDao(baseData),
		dao.NewVenueDao(baseData),
		dao.NewSupplierDao(baseData),
		dao.NewTagDao(baseData),
		dao.NewEventDao(baseData),
		bus,
	)
	return svc, mock, bus
}

func profileRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "role"})
}

func tagRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "event_id", "tagged_entity_id", "tagged_entity_type", "tagged_by", "is_confirmed", "created_at", "updated_at"})
}

func eventRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "date", "organizer_id"})
}

// 场馆经理名下有{A,B}两个场馆，标签落在{A,C}上，列表里只应出现A的标签
func TestResolveFeedVenueManagerScope(t *testing.T) {
	svc, mock, _ := newNotificationService(t)

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `profiles` WHERE id = \\?").
		WithArgs("P", 1).
		WillReturnRows(profileRows().AddRow("P", "王经理", "p@test.com", consts.RoleVenueManager))
	mock.ExpectQuery("SELECT \\* FROM `venues` WHERE company_id = \\?").
		WithArgs("P").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "company_id", "contact_email"}).
			AddRow("A", "滨江大礼堂", "P", "a@test.com").
			AddRow("B", "城北会展中心", "P", "b@test.com"))
	// C不在查询条件里，库侧就把它过滤掉了
	mock.ExpectQuery("SELECT \\* FROM `tags` WHERE tagged_entity_type = \\? AND tagged_entity_id IN \\(\\?,\\?\\) ORDER BY created_at DESC").
		WithArgs("venue", "A", "B").
		WillReturnRows(tagRows().AddRow("T1", "E1", "A", "venue", "P9", false, now, now))
	mock.ExpectQuery("SELECT \\* FROM `events` WHERE id = \\?").
		WithArgs("E1", 1).
		WillReturnRows(eventRows().AddRow("E1", "夏季音乐节", time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC), "P9"))

	notifications := svc.ResolveFeed("P")
	require.Len(t, notifications, 1)
	assert.Equal(t, "T1", notifications[0].ID)
	assert.Equal(t, "A", notifications[0].TaggedEntityId)
	assert.Equal(t, "夏季音乐节", notifications[0].EventName)
	assert.Equal(t, "2026-06-01", notifications[0].EventDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 供应商侧只看未确认的标签，与场馆侧不对称
func TestResolveFeedSupplierUnconfirmedOnly(t *testing.T) {
	svc, mock, _ := newNotificationService(t)

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `profiles` WHERE id = \\?").
		WithArgs("S", 1).
		WillReturnRows(profileRows().AddRow("S", "李供应", "s@test.com", consts.RoleSupplier))
	mock.ExpectQuery("SELECT \\* FROM `suppliers` WHERE company_id = \\?").
		WithArgs("S", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "company_id", "contact_email"}).
			AddRow("S1", "花艺工作室", "S", "s1@test.com"))
	mock.ExpectQuery("SELECT \\* FROM `tags` WHERE tagged_entity_type = \\? AND tagged_entity_id IN \\(\\?\\) AND is_confirmed = \\? ORDER BY created_at DESC").
		WithArgs("supplier", "S1", false).
		WillReturnRows(tagRows().AddRow("T2", "E2", "S1", "supplier", "P9", false, now, now))
	mock.ExpectQuery("SELECT \\* FROM `events` WHERE id = \\?").
		WithArgs("E2", 1).
		WillReturnRows(eventRows())

	notifications := svc.ResolveFeed("S")
	require.Len(t, notifications, 1)
	assert.False(t, notifications[0].IsConfirmed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveFeedMissingProfile(t *testing.T) {
	svc, mock, _ := newNotificationService(t)

	mock.ExpectQuery("SELECT \\* FROM `profiles` WHERE id = \\?").
		WithArgs("nobody", 1).
		WillReturnRows(profileRows())

	notifications := svc.ResolveFeed("nobody")
	assert.Empty(t, notifications)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveFeedSupplierWithoutEntity(t *testing.T) {
	svc, mock, _ := newNotificationService(t)

	mock.ExpectQuery("SELECT \\* FROM `profiles` WHERE id = \\?").
		WithArgs("S", 1).
		WillReturnRows(profileRows().AddRow("S", "李供应", "s@test.com", consts.RoleSupplier))
	mock.ExpectQuery("SELECT \\* FROM `suppliers` WHERE company_id = \\?").
		WithArgs("S", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "company_id", "contact_email"}))

	notifications := svc.ResolveFeed("S")
	assert.Empty(t, notifications)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveFeedOtherRole(t *testing.T) {
	svc, mock, _ := newNotificationService(t)

	mock.ExpectQuery("SELECT \\* FROM `profiles` WHERE id = \\?").
		WithArgs("U", 1).
		WillReturnRows(profileRows().AddRow("U", "普通用户", "u@test.com", consts.RoleUser))

	notifications := svc.ResolveFeed("U")
	assert.Empty(t, notifications)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 订阅建立后插入符合条件的标签，不用手动刷新，下一帧快照就能看到
func TestSubscribeFeedReceivesInsert(t *testing.T) {
	svc, mock, bus := newNotificationService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Now()
	// 初始快照：一条标签都没有
	mock.ExpectQuery("SELECT \\* FROM `profiles` WHERE id = \\?").
		WithArgs("P", 1).
		WillReturnRows(profileRows().AddRow("P", "王经理", "p@test.com", consts.RoleVenueManager))
	mock.ExpectQuery("SELECT \\* FROM `venues` WHERE company_id = \\?").
		WithArgs("P").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "company_id", "contact_email"}).
			AddRow("10", "滨江大礼堂", "P", "v@test.com"))
	mock.ExpectQuery("SELECT \\* FROM `tags` WHERE tagged_entity_type = \\?").
		WithArgs("venue", "10").
		WillReturnRows(tagRows())

	handle := svc.SubscribeFeed(ctx, "P")
	defer handle.Close()

	select {
	case snapshot := <-handle.Snapshots():
		assert.Equal(t, 0, snapshot.Count)
	case <-time.After(3 * time.Second):
		t.Fatal("未收到初始快照")
	}

	// 变更投递后整体重算：这次能查到新插入的标签
	mock.ExpectQuery("SELECT \\* FROM `profiles` WHERE id = \\?").
		WithArgs("P", 1).
		WillReturnRows(profileRows().AddRow("P", "王经理", "p@test.com", consts.RoleVenueManager))
	mock.ExpectQuery("SELECT \\* FROM `venues` WHERE company_id = \\?").
		WithArgs("P").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "company_id", "contact_email"}).
			AddRow("10", "滨江大礼堂", "P", "v@test.com"))
	mock.ExpectQuery("SELECT \\* FROM `tags` WHERE tagged_entity_type = \\?").
		WithArgs("venue", "10").
		WillReturnRows(tagRows().AddRow("T1", "E1", "10", "venue", "P9", false, now, now))
	mock.ExpectQuery("SELECT \\* FROM `events` WHERE id = \\?").
		WithArgs("E1", 1).
		WillReturnRows(eventRows().AddRow("E1", "夏季音乐节", now, "P9"))

	tag := &model.Tag{ID: "T1", EventId: "E1", TaggedEntityId: "10", TaggedEntityType: "venue", TaggedBy: "P9"}
	require.NoError(t, bus.Publish(ctx, &feed.ChangeEvent{Kind: consts.ChangeInsert, Tag: tag}))

	select {
	case snapshot := <-handle.Snapshots():
		require.Equal(t, 1, snapshot.Count)
		assert.Equal(t, "T1", snapshot.Notifications[0].ID)
	case <-time.After(3 * time.Second):
		t.Fatal("变更投递后未收到新快照")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

// debounce策略下窗口内的连续变更合并成一次重算：只准备一轮查库期望，
// 多余的重算会打到没有期望的mock上立刻暴露
func TestSubscribeFeedDebounceMergesEvents(t *testing.T) {
	svc, mock, bus := newNotificationService(t)
	config.SysConfig.Feed.Policy = consts.FeedPolicyDebounce
	config.SysConfig.Feed.DebounceMillis = 150

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Now()
	// 初始快照
	mock.ExpectQuery("SELECT \\* FROM `profiles` WHERE id = \\?").
		WithArgs("P", 1).
		WillReturnRows(profileRows().AddRow("P", "王经理", "p@test.com", consts.RoleVenueManager))
	mock.ExpectQuery("SELECT \\* FROM `venues` WHERE company_id = \\?").
		WithArgs("P").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "company_id", "contact_email"}).
			AddRow("10", "滨江大礼堂", "P", "v@test.com"))
	mock.ExpectQuery("SELECT \\* FROM `tags` WHERE tagged_entity_type = \\?").
		WithArgs("venue", "10").
		WillReturnRows(tagRows())

	handle := svc.SubscribeFeed(ctx, "P")
	defer handle.Close()

	select {
	case snapshot := <-handle.Snapshots():
		assert.Equal(t, 0, snapshot.Count)
	case <-time.After(3 * time.Second):
		t.Fatal("未收到初始快照")
	}

	// 窗口内三次变更只允许一轮重算查库
	mock.ExpectQuery("SELECT \\* FROM `profiles` WHERE id = \\?").
		WithArgs("P", 1).
		WillReturnRows(profileRows().AddRow("P", "王经理", "p@test.com", consts.RoleVenueManager))
	mock.ExpectQuery("SELECT \\* FROM `venues` WHERE company_id = \\?").
		WithArgs("P").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "company_id", "contact_email"}).
			AddRow("10", "滨江大礼堂", "P", "v@test.com"))
	mock.ExpectQuery("SELECT \\* FROM `tags` WHERE tagged_entity_type = \\?").
		WithArgs("venue", "10").
		WillReturnRows(tagRows().AddRow("T1", "E1", "10", "venue", "P9", false, now, now))
	mock.ExpectQuery("SELECT \\* FROM `events` WHERE id = \\?").
		WithArgs("E1", 1).
		WillReturnRows(eventRows().AddRow("E1", "夏季音乐节", now, "P9"))

	for _, id := range []string{"T1", "T2", "T3"} {
		tag := &model.Tag{ID: id, EventId: "E1", TaggedEntityId: "10", TaggedEntityType: "venue", TaggedBy: "P9"}
		require.NoError(t, bus.Publish(ctx, &feed.ChangeEvent{Kind: consts.ChangeInsert, Tag: tag}))
	}

	select {
	case snapshot := <-handle.Snapshots():
		require.Equal(t, 1, snapshot.Count)
		assert.Equal(t, "T1", snapshot.Notifications[0].ID)
	case <-time.After(3 * time.Second):
		t.Fatal("窗口结束后未收到合并快照")
	}

	// 不应再有第二帧
	select {
	case snapshot := <-handle.Snapshots():
		t.Fatalf("窗口内事件未合并，多出一帧快照：%+v", snapshot)
	case <-time.After(400 * time.Millisecond):
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
