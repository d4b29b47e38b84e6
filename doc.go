// Package lvtour is an engine for tours of multivariate data: sequences of
// 2D (or 1D) orthonormal projections that a viewer plays as an animation.
//
// The pieces, bottom-up:
//
//	matrix/     dense row-major kernels: Mul, Transpose, Jacobi eigen,
//	            Gram–Schmidt, determinant, covariance, validators
//	basis/      projection bases: Identity, Random, PCA, HalfCircle,
//	            Validate, principal angles and distances between planes
//	manual/     manual tours: rotate one variable in and out of the plane
//	            through a 3D manipulation space
//	geodesic/   geodesic interpolation between target bases with a bounded
//	            angular step
//	tour/       Path and Dataset values, rescaling, frame assembly into a
//	            go-gg table
//	render/     the Renderer contract with animation and interactive
//	            implementations
//
// Quick example:
//
//	b, _ := basis.Identity(4, 2)
//	path, _ := manual.ManualTour(b, 0, manual.WithData(ds))
//	ft, _ := tour.Assemble(path)
//	_ = render.NewAnimationRenderer().Render(ctx, ft)
//
// Every producer returns a *tour.Path; every consumer takes one. Angles are
// radians and variable indices are zero-based.
package lvtour
