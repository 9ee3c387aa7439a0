package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ess/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ess/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/ess/internal/adapters/inline"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ess/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ess/internal/adapters/prune"     //nolint:depguard // Wired in app layer
	"go.trai.ch/ess/internal/adapters/sass"      //nolint:depguard // Wired in app layer
	"go.trai.ch/ess/internal/adapters/state"     //nolint:depguard // Wired in app layer
	"go.trai.ch/ess/internal/adapters/svg"       //nolint:depguard // Wired in app layer
	"go.trai.ch/ess/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/ess/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ResolverFactoryNodeID,
			fs.WalkerNodeID,
			fs.HasherNodeID,
			sass.NodeID,
			prune.NodeID,
			inline.NodeID,
			svg.NodeID,
			state.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolvers, err := graft.Dep[ports.ResolverFactory](ctx)
	if err != nil {
		return nil, err
	}

	compiler, err := graft.Dep[ports.SassCompiler](ctx)
	if err != nil {
		return nil, err
	}

	pruner, err := graft.Dep[ports.RulePruner](ctx)
	if err != nil {
		return nil, err
	}

	inliner, err := graft.Dep[ports.ImageInliner](ctx)
	if err != nil {
		return nil, err
	}

	optimizer, err := graft.Dep[ports.SvgOptimizer](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.BuildRecordStore](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	walker, err := graft.Dep[*fs.Walker](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[*fs.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	return New(
		loader,
		resolvers,
		compiler,
		pruner,
		inliner,
		optimizer,
		store,
		tracer,
		log,
		walker,
		hasher,
	), nil
}
