package zone

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/911ray911/GIDS-Medium/internal/model"
	"github.com/911ray911/GIDS-Medium/internal/render"
	"github.com/911ray911/GIDS-Medium/internal/service/storage"
	"github.com/911ray911/GIDS-Medium/internal/util"
)

// ZoneService owns the one-shot load of the precomputed DSS zone file
// and the decorated layer built from it. The load runs exactly once:
// it either succeeds or fails, and neither outcome is retried. A failed
// load leaves the service answering with its stored error so the rest
// of the map (base tiles, legend) stays functional.
type ZoneService struct {
	logger  *zap.Logger
	storage storage.Storage[string, *model.Zone]

	initMutex   sync.RWMutex
	initialized bool
	loadErr     error

	collection *geojson.FeatureCollection
	bound      orb.Bound
	hasBound   bool
}

// NewZoneService creates a service that has not loaded anything yet
func NewZoneService(logger *zap.Logger) *ZoneService {
	return &ZoneService{
		logger:  logger,
		storage: storage.NewMemoryStorage[string, *model.Zone](),
	}
}

// InitService loads the zone collection from path, decorates every
// feature with its rendering style and popup fragment, and computes the
// collection bound used for the viewport fit. Calling it again after
// the first attempt is a no-op regardless of the first outcome.
func (s *ZoneService) InitService(ctx context.Context, path string) error {
	s.initMutex.Lock()
	defer s.initMutex.Unlock()

	if s.initialized {
		s.logger.Info("ZoneService already initialized, skipping")
		return s.loadErr
	}
	s.initialized = true

	start := time.Now()
	s.logger.Info("Loading zone collection", zap.String("path", path))

	if err := ctx.Err(); err != nil {
		s.loadErr = err
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		s.loadErr = fmt.Errorf("failed to read zone file: %w", err)
		s.logger.Error("Zone file read failed", zap.String("path", path), zap.Error(err))
		return s.loadErr
	}

	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		s.loadErr = fmt.Errorf("failed to parse zone file: %w", err)
		s.logger.Error("Zone file parse failed", zap.String("path", path), zap.Error(err))
		return s.loadErr
	}

	// Decorate each feature in place: the styler and popup formatter
	// run once per zone here, the browser only consumes their output
	for i, f := range fc.Features {
		if f == nil {
			continue
		}
		z := model.NewZone(f)
		f.Properties["_style"] = render.StyleOf(z)
		f.Properties["_popup"] = render.PopupHTML(z)

		key := z.ID()
		if key == "" {
			key = fmt.Sprintf("zone-%d", i)
		}
		s.storage.Set(key, z)
	}

	s.collection = fc
	s.bound, s.hasBound = util.CollectionBound(fc)

	s.logger.Info("Zone collection loaded",
		zap.Int("zones", s.storage.Count()),
		zap.Duration("took", time.Since(start)))
	return nil
}

// Collection returns the decorated feature collection, or the stored
// load error when the load never succeeded
func (s *ZoneService) Collection() (*geojson.FeatureCollection, error) {
	s.initMutex.RLock()
	defer s.initMutex.RUnlock()

	if !s.initialized {
		return nil, fmt.Errorf("zone collection not loaded yet")
	}
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.collection, nil
}

// Zone returns a single zone by its zone_id
func (s *ZoneService) Zone(id string) (*model.Zone, bool) {
	return s.storage.Get(id)
}

// Count returns the number of loaded zones
func (s *ZoneService) Count() int {
	return s.storage.Count()
}

// Bound returns the union bound of all loaded zones. ok is false when
// nothing was loaded or no feature carried a geometry.
func (s *ZoneService) Bound() (orb.Bound, bool) {
	s.initMutex.RLock()
	defer s.initMutex.RUnlock()
	return s.bound, s.hasBound
}

// LoadError returns the terminal error of the load operation, nil when
// the load succeeded or has not run
func (s *ZoneService) LoadError() error {
	s.initMutex.RLock()
	defer s.initMutex.RUnlock()
	return s.loadErr
}
