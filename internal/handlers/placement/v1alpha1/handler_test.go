package v1alpha1_test

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-grid/internal/entities"
	"github.com/KirkDiggler/rpg-grid/internal/errors"
	"github.com/KirkDiggler/rpg-grid/internal/grid"
	"github.com/KirkDiggler/rpg-grid/internal/handlers/placement/v1alpha1"
	"github.com/KirkDiggler/rpg-grid/internal/orchestrators/building"
	"github.com/KirkDiggler/rpg-grid/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-grid/internal/placement"
	"github.com/KirkDiggler/rpg-grid/internal/repositories/snapshots"
	service "github.com/KirkDiggler/rpg-grid/internal/services/building"
	buildingmock "github.com/KirkDiggler/rpg-grid/internal/services/building/mock"
	"github.com/KirkDiggler/rpg-grid/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *buildingmock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = buildingmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	h, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{BuildingService: s.mockService})
	s.Require().NoError(err)
	s.handler = h
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestPlaceConvertsTarget() {
	s.mockService.EXPECT().
		Place(s.ctx, &service.PlaceInput{
			SessionID:  "sess_1",
			TemplateID: testutils.TemplateWall,
			Target:     placement.AtCell(entities.Coord{X: 1, Z: 2}).WithEdge(entities.EdgeLeft),
		}).
		Return(&service.PlaceOutput{
			Result: &service.PlacementResult{
				Reason:     placement.SlotUnavailable,
				NeighborID: "ent_1",
			},
			Session: &service.Session{ID: "sess_1", State: placement.TemplateSelected},
		}, nil)

	resp, err := s.handler.Place(s.ctx, &v1alpha1.PlaceRequest{
		SessionID:  "sess_1",
		TemplateID: testutils.TemplateWall,
		Target:     &v1alpha1.Target{Cell: &entities.Coord{X: 1, Z: 2}, Edge: "left"},
	})
	s.Require().NoError(err)
	s.False(resp.Result.OK)
	s.Equal("slot_unavailable", resp.Result.Reason)
	s.Equal("ent_1", resp.Result.NeighborID)
	s.Nil(resp.Result.Cell)
	s.Equal("template_selected", resp.Session.State)
}

func (s *HandlerTestSuite) TestInvalidTargets() {
	testCases := []struct {
		name   string
		target *v1alpha1.Target
	}{
		{name: "missing", target: nil},
		{name: "empty", target: &v1alpha1.Target{}},
		{name: "both", target: &v1alpha1.Target{Cell: &entities.Coord{}, World: &entities.Vec3{}}},
		{name: "bad edge", target: &v1alpha1.Target{Cell: &entities.Coord{}, Edge: "diagonal"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.handler.Remove(s.ctx, &v1alpha1.RemoveRequest{SessionID: "sess_1", Target: tc.target})
			s.Equal(codes.InvalidArgument, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestErrorsMapToStatusCodes() {
	s.mockService.EXPECT().
		GetSession(s.ctx, &service.GetSessionInput{SessionID: "sess_404"}).
		Return(nil, errors.NotFound("session sess_404 not found"))

	_, err := s.handler.GetSession(s.ctx, &v1alpha1.GetSessionRequest{SessionID: "sess_404"})
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestApplyLayoutRejectsBadFloorplan() {
	_, err := s.handler.ApplyLayout(s.ctx, &v1alpha1.ApplyLayoutRequest{SessionID: "sess_1"})
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.ApplyLayout(s.ctx, &v1alpha1.ApplyLayoutRequest{
		SessionID: "sess_1",
		Floorplan: json.RawMessage(`{"not": "a list"}`),
	})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestRecoverPanicHidesPanicValue() {
	err := v1alpha1.RecoverPanic("nil map write in session sess_1")

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())
	s.Equal("internal error", st.Message())
	s.True(errors.IsInternal(errors.FromGRPCError(err)))
}

// ServerTestSuite runs the real orchestrator behind a gRPC server on an
// in-memory listener
type ServerTestSuite struct {
	suite.Suite
	server *grpc.Server
	conn   *grpc.ClientConn
	client v1alpha1.PlacementServiceClient
	ctx    context.Context
	cancel context.CancelFunc
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	orchestrator, err := building.New(&building.Config{
		Catalog:           testutils.CreateTestCatalog(s.T()),
		SnapshotRepo:      snapshots.NewInMemory(),
		Grid:              &grid.Config{Width: 5, Depth: 5, CellSize: 1},
		Layers:            1,
		AutoDeselect:      true,
		FloorTemplate:     testutils.TemplateFloor,
		EntityIDGenerator: func() idgen.Generator { return idgen.NewSequential("ent") },
	})
	s.Require().NoError(err)

	s.start(orchestrator)
}

func (s *ServerTestSuite) start(svc service.Service) {
	if s.server != nil {
		s.TearDownTest()
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{BuildingService: svc})
	s.Require().NoError(err)

	lis := bufconn.Listen(1 << 20)
	s.server = grpc.NewServer(grpc.ChainUnaryInterceptor(
		grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(v1alpha1.RecoverPanic)),
	))
	v1alpha1.RegisterPlacementServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)

	s.client = v1alpha1.NewPlacementServiceClient(s.conn)
	s.ctx, s.cancel = context.WithTimeout(context.Background(), 5*time.Second)
}

func (s *ServerTestSuite) TearDownTest() {
	s.cancel()
	_ = s.conn.Close()
	s.server.Stop()
	s.server = nil
}

func (s *ServerTestSuite) TestPanicBecomesInternalStatus() {
	ctrl := gomock.NewController(s.T())
	mockService := buildingmock.NewMockService(ctrl)
	mockService.EXPECT().
		GetSession(gomock.Any(), &service.GetSessionInput{SessionID: "sess_1"}).
		DoAndReturn(func(context.Context, *service.GetSessionInput) (*service.GetSessionOutput, error) {
			panic("session table corrupted")
		})
	mockService.EXPECT().
		GetSession(gomock.Any(), &service.GetSessionInput{SessionID: "sess_2"}).
		Return(nil, errors.NotFound("session sess_2 not found"))
	s.start(mockService)

	_, err := s.client.GetSession(s.ctx, &v1alpha1.GetSessionRequest{SessionID: "sess_1"})
	s.Equal(codes.Internal, status.Code(err))
	s.Equal("internal error", status.Convert(err).Message())

	// the server keeps serving after a panic
	_, err = s.client.GetSession(s.ctx, &v1alpha1.GetSessionRequest{SessionID: "sess_2"})
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *ServerTestSuite) TestPlaceOverTheWire() {
	created, err := s.client.CreateSession(s.ctx, &v1alpha1.CreateSessionRequest{})
	s.Require().NoError(err)
	id := created.Session.ID
	s.Equal("idle", created.Session.State)

	placed, err := s.client.Place(s.ctx, &v1alpha1.PlaceRequest{
		SessionID:  id,
		TemplateID: testutils.TemplateSofa,
		Target:     &v1alpha1.Target{World: &entities.Vec3{X: 1.2, Z: 3.7}},
	})
	s.Require().NoError(err)
	s.Require().True(placed.Result.OK)
	s.Equal(entities.Coord{X: 1, Z: 3}, placed.Result.Object.Origin)
	s.Equal(entities.GridObject, placed.Result.Object.Category)

	blocked, err := s.client.Place(s.ctx, &v1alpha1.PlaceRequest{
		SessionID:  id,
		TemplateID: testutils.TemplateCrate,
		Target:     &v1alpha1.Target{Cell: &entities.Coord{X: 2, Z: 3}},
	})
	s.Require().NoError(err)
	s.False(blocked.Result.OK)
	s.Equal("cell_occupied", blocked.Result.Reason)
	s.Equal(&entities.Coord{X: 2, Z: 3}, blocked.Result.Cell)

	_, err = s.client.GetSession(s.ctx, &v1alpha1.GetSessionRequest{SessionID: "sess_missing"})
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *ServerTestSuite) TestApplyLayoutAndSnapshotOverTheWire() {
	created, err := s.client.CreateSession(s.ctx, &v1alpha1.CreateSessionRequest{})
	s.Require().NoError(err)
	id := created.Session.ID

	applied, err := s.client.ApplyLayout(s.ctx, &v1alpha1.ApplyLayoutRequest{
		SessionID: id,
		Floorplan: json.RawMessage(`[
			{"name": "original", "width": 50, "height": 50},
			{"name": "Bed", "text": "Bed", "position": {"x": 5, "y": 5}},
			{"name": "Lamp", "text": "lamp", "position": {"x": 40, "y": 40}}
		]`),
		FillFloor: true,
	})
	s.Require().NoError(err)
	s.Equal(1, applied.Placed)
	s.Equal(1, applied.Failed)
	s.Equal(25, applied.FloorPlaced)
	s.Zero(applied.FloorSkipped)
	s.Require().Len(applied.Placements, 2)
	s.Equal(testutils.TemplateBed, applied.Placements[0].TemplateID)
	s.True(applied.Placements[1].TemplateUnresolved)
	s.Len(applied.Session.Objects, 26)

	saved, err := s.client.SaveSnapshot(s.ctx, &v1alpha1.SaveSnapshotRequest{SessionID: id})
	s.Require().NoError(err)
	s.Equal(26, saved.Placements)

	loaded, err := s.client.LoadSnapshot(s.ctx, &v1alpha1.LoadSnapshotRequest{SessionID: id, SnapshotID: saved.SnapshotID})
	s.Require().NoError(err)
	s.Zero(loaded.Skipped)
	s.Len(loaded.Session.Objects, 26)

	_, err = s.client.DeleteSession(s.ctx, &v1alpha1.DeleteSessionRequest{SessionID: id})
	s.Require().NoError(err)
}
