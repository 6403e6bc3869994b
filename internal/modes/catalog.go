package modes

import "github.com/san-kum/synesthetica/internal/engine"

func param(id, name string, min, max, step, def float64) engine.ParamDecl {
	return engine.ParamDecl{ID: id, Name: name, Min: min, Max: max, Step: step, Default: def}
}

func alg(id, name string, params ...engine.ParamDecl) engine.AlgorithmDescriptor {
	return engine.AlgorithmDescriptor{ID: id, Name: name, Params: params}
}

// Shared declarations.
var (
	particleCount = func(def float64) engine.ParamDecl {
		return param("particleCount", "Particles", 50, 500, 10, def)
	}
	trailLength = func(def float64) engine.ParamDecl {
		return param("trailLength", "Trail Length", 0, 50, 1, def)
	}
	glow          = param("glow", "Glow", 0, 1, 1, 0)
	signalSpeed   = param("signalSpeed", "Signal Speed", 0.5, 5, 0.1, 2)
	synapseRadius = param("synapseRadius", "Synapse Radius", 1, 30, 1, 15)
	symmetry      = param("symmetry", "Symmetry", 0, 3, 1, 0)
	palette       = param("palette", "Palette", 0, 3, 1, 0)
	evolve        = param("evolve", "Evolve Colors", 0, 1, 1, 0)
	gridSize      = param("gridSize", "Grid Size", 20, 60, 1, 30)
)

// Catalog lists every mode in menu order.
var Catalog = []engine.ModeDescriptor{
	{
		ID: "fiber", Name: "Fiber Bundle", Description: "Functions as twisted ribbons in space.",
		Algorithms: []engine.AlgorithmDescriptor{
			alg("v0", "Points",
				param("amplitude", "Amplitude", 10, 100, 1, 40),
				param("points", "Points", 50, 400, 10, 200)),
			alg("v1", "Line Strip",
				param("twist", "Twist", 0, 20, 0.1, 5),
				param("amplitude", "Amplitude", 10, 100, 1, 40)),
			alg("v2", "Twisted Ribbon",
				param("twist", "Ribbon Twist", 0.1, 10, 0.1, 2),
				param("amplitude", "Amplitude", 10, 100, 1, 30)),
		},
	},
	{
		ID: "marbleFlow", Name: "Marble Flow", Description: "Marbles rolling on the function curve.",
		Algorithms: []engine.AlgorithmDescriptor{
			alg("default", "Default",
				param("marbles", "Marbles", 5, 50, 1, 20),
				param("gravity", "Gravity", 0, 1, 0.01, 0.2),
				param("damping", "Damping", 0.01, 0.2, 0.01, 0.05)),
		},
	},
	{
		ID: "fluidField", Name: "Fluid Field", Description: "The function as a vector field carrying particles.",
		Algorithms: []engine.AlgorithmDescriptor{
			alg("v0", "Classic",
				particleCount(200),
				param("flowSpeed", "Flow Speed", 0.1, 5, 0.1, 1.5),
				param("noise", "Noise", 0, 2, 0.1, 0.5),
				trailLength(10), glow),
			alg("v1", "Vortex",
				particleCount(200),
				param("vortexStrength", "Vortex Strength", 0, 10, 0.1, 5),
				param("radialForce", "Radial Force", -5, 5, 0.1, 1),
				trailLength(15), glow),
			alg("v2", "Gravity Wells",
				particleCount(200),
				param("numWells", "Gravity Wells", 1, 10, 1, 5),
				param("gravityStrength", "Gravity Strength", 0, 100, 1, 50),
				trailLength(5)),
			alg("v3", "Lattice Deformation",
				param("gridDensity", "Grid Density", 5, 40, 1, 20),
				param("deformationScale", "Deformation", 0.1, 5, 0.1, 1.5),
				param("damping", "Damping", 0.5, 0.99, 0.01, 0.92)),
			alg("v4", "Curl & Divergence",
				particleCount(150),
				param("fieldStrength", "Field Strength", 0.1, 5, 0.1, 2),
				trailLength(15), glow),
			alg("v5", "Topological Portrait",
				particleCount(150),
				param("fieldStrength", "Field Strength", 0.1, 5, 0.1, 2),
				param("streamlineLength", "Streamline Length", 5, 100, 1, 40),
				param("colorizeSpeed", "Colorize Speed", 0, 1, 1, 0)),
		},
	},
	{
		ID: "neural", Name: "Neural Synapses", Description: "The function as activation in a neural network.",
		Algorithms: []engine.AlgorithmDescriptor{
			alg("v0", "Layered",
				param("layers", "Layers", 3, 7, 1, 4),
				param("neurons", "Neurons/Layer", 4, 12, 1, 8),
				signalSpeed),
			alg("v1", "Circular",
				param("rings", "Rings", 2, 6, 1, 3),
				param("neuronsPerRing", "Neurons/Ring", 6, 20, 1, 12),
				signalSpeed),
			alg("v2", "Reactive",
				param("layers", "Layers", 3, 7, 1, 4),
				param("neurons", "Neurons/Layer", 4, 12, 1, 8),
				signalSpeed,
				param("recoilStrength", "Recoil Strength", 0, 10, 0.5, 5),
				param("jitter", "Jitter", 0, 50, 1, 10)),
			alg("v3", "Geometric",
				param("nodes", "Nodes", 3, 20, 1, 6),
				signalSpeed,
				param("recoilStrength", "Recoil Strength", 0, 10, 0.5, 5),
				param("jitter", "Jitter", 0, 20, 1, 2)),
		},
	},
	{
		ID: "origami", Name: "Origami Fold", Description: "The function folds a sheet of paper.",
		Algorithms: []engine.AlgorithmDescriptor{
			alg("v0", "Strip",
				param("segments", "Segments", 10, 80, 1, 40),
				param("foldStrength", "Fold Strength", 0.1, 2, 0.1, 1),
				param("foldInertia", "Fold Inertia", 0.8, 0.99, 0.01, 0.95)),
			alg("v1", "Radial",
				param("arms", "Arms", 3, 16, 1, 8),
				param("segments", "Segments", 5, 40, 1, 20),
				param("foldStrength", "Fold Strength", 0.1, 4, 0.1, 2)),
			alg("v2", "Branched",
				param("depth", "Depth", 2, 6, 1, 4),
				param("branchAngle", "Branch Angle", 0, 1.5, 0.05, 0.8),
				param("foldStrength", "Fold Strength", 0.1, 4, 0.1, 1.5)),
		},
	},
	{
		ID: "quantum", Name: "Quantum Harmonic", Description: "Interference patterns from wavefunctions.",
		Algorithms: []engine.AlgorithmDescriptor{
			alg("v0", "Interference",
				param("frequency", "Base Frequency", 0.05, 0.5, 0.01, 0.1),
				param("particles", "Particle Count", 50, 200, 1, 100)),
			alg("v1", "Probability Cloud",
				param("particles", "Particles", 500, 5000, 100, 2000),
				param("amplitude", "Amplitude", 10, 200, 1, 80),
				param("jitter", "Jitter", 0, 50, 1, 10)),
			alg("v2", "Orbitals",
				param("gridSize", "Grid Size", 2, 16, 1, 8),
				param("orbitSize", "Orbit Size", 5, 60, 1, 25),
				trailLength(20)),
			alg("v3", "Wave Packet",
				param("speed", "Speed", 0.5, 10, 0.5, 4),
				param("amplitude", "Amplitude", 10, 150, 1, 60),
				param("packetWidth", "Packet Width", 20, 200, 5, 80),
				param("tunneling", "Tunneling", 0, 1, 1, 1),
				param("renderStyle", "Render Style", 0, 1, 1, 0)),
		},
	},
	{
		ID: "crystal", Name: "Crystal Lattice", Description: "Functions as crystalline deformations.",
		Algorithms: []engine.AlgorithmDescriptor{
			alg("v0", "Deformation", gridSize,
				param("deformation", "Deformation", 1, 20, 1, 5)),
			alg("v1", "Size Modulation", gridSize,
				param("sizeFactor", "Size Factor", 1, 15, 0.5, 8)),
			alg("v2", "Rotational Field", gridSize,
				param("rotationFactor", "Rotation Factor", 0, 3.14, 0.05, 1.57)),
			alg("v3", "Limited Grid", gridSize,
				param("deformation", "Deformation", 1, 20, 1, 5)),
		},
	},
	{
		ID: "morph", Name: "Morphogenetic", Description: "Functions as organic growth patterns.",
		Algorithms: []engine.AlgorithmDescriptor{
			alg("v0", "Symmetric",
				param("branches", "Branches", 3, 12, 1, 8),
				param("growth", "Growth Factor", 10, 50, 1, 20)),
			alg("v2", "Asymmetric",
				param("branches", "Branches", 3, 12, 1, 6),
				param("growth", "Growth", 10, 50, 1, 30),
				param("asymmetry", "Asymmetry", -1, 1, 0.1, 0.5)),
			alg("v3", "Thickening",
				param("branches", "Branches", 3, 12, 1, 7),
				param("growth", "Growth", 10, 50, 1, 25),
				param("thickness", "Thickness", 1, 5, 0.25, 2)),
		},
	},
	{
		ID: "synapticGrowth", Name: "Synaptic Growth", Description: "Generative growth with synaptic firing.",
		Algorithms: []engine.AlgorithmDescriptor{
			alg("v0", "Symmetric",
				param("branches", "Branches", 2, 12, 1, 6),
				param("growth", "Growth", 10, 60, 1, 40),
				param("depth", "Depth", 3, 8, 1, 5),
				synapseRadius, symmetry),
			alg("v1", "Asymmetric",
				param("branches", "Branches", 2, 12, 1, 5),
				param("growth", "Growth", 10, 60, 1, 45),
				param("depth", "Depth", 3, 8, 1, 6),
				param("asymmetry", "Asymmetry", -1, 1, 0.1, 0.6),
				synapseRadius, symmetry),
			alg("v2", "Biometric",
				param("branches", "Branches", 2, 12, 1, 7),
				param("growth", "Growth", 10, 60, 1, 35),
				param("depth", "Depth", 3, 8, 1, 5),
				param("thickness", "Thickness", 1, 8, 0.25, 4),
				synapseRadius, symmetry),
		},
	},
	{
		ID: "eventGrowth", Name: "Event Growth", Description: "Zero crossings of the function seed growing structures.",
		Algorithms: []engine.AlgorithmDescriptor{
			alg("v0", "Forest",
				param("length", "Length", 5, 60, 1, 20),
				param("angle", "Branch Angle", 0.1, 1.5, 0.05, 0.5),
				param("growthMode", "Growth Mode", 0, 1, 1, 0),
				param("renderStyle", "Render Style", 0, 1, 1, 0),
				param("decay", "Decay", 0.9, 0.999, 0.001, 0.99),
				palette, evolve),
			alg("v1", "Vines",
				param("length", "Max Length", 20, 400, 5, 150),
				param("speed", "Speed", 0.5, 10, 0.5, 2),
				param("curvature", "Curvature", 0, 1, 0.01, 0.1),
				param("decay", "Decay", 0.9, 0.999, 0.001, 0.99),
				palette, evolve),
			alg("v2", "Pulse Network",
				param("density", "Density", 2, 30, 1, 10),
				param("pulseSpeed", "Pulse Speed", 0.5, 20, 0.5, 4),
				param("pulseWidth", "Pulse Width", 5, 100, 1, 40),
				param("decay", "Decay", 0.9, 0.999, 0.001, 0.99),
				palette, evolve),
		},
	},
	{
		ID: "phase", Name: "Phase Choreography", Description: "Particle swarms dancing through phase space.",
		Algorithms: []engine.AlgorithmDescriptor{
			alg("v0", "Polar Orbits",
				param("particles", "Particles", 10, 50, 1, 20),
				param("radius", "Base Radius", 50, 150, 1, 80)),
			alg("v1", "Lissajous Grid",
				param("gridSize", "Grid Size", 2, 10, 1, 5),
				param("baseFreq", "Base Frequency", 1, 6, 1, 2),
				param("amplitude", "Amplitude", 10, 80, 1, 40)),
			alg("v2", "Phase Portrait",
				param("particles", "Particles", 20, 300, 10, 100),
				param("stiffness", "Stiffness", 0.1, 5, 0.1, 1),
				param("damping", "Damping", 0, 1, 0.01, 0.1),
				param("force", "Forcing", 0, 5, 0.1, 1)),
			alg("v3", "Kuramoto",
				param("oscillators", "Oscillators", 5, 100, 1, 30),
				param("coupling", "Coupling", 0, 5, 0.05, 0.5),
				param("freqMod", "Frequency Mod", 0, 5, 0.1, 1)),
		},
	},
	{
		ID: "graph", Name: "Graph Evolution", Description: "Dynamic network topology changes.",
		Algorithms: []engine.AlgorithmDescriptor{
			alg("v0", "Dynamic Topology",
				param("nodes", "Nodes", 8, 24, 1, 12),
				param("connectivity", "Connectivity", 0.1, 0.9, 0.05, 0.4)),
			alg("v1", "Force-Directed",
				param("nodes", "Nodes", 5, 60, 1, 20),
				param("stiffness", "Stiffness", 0.001, 0.1, 0.001, 0.02),
				param("repulsion", "Repulsion", 10, 1000, 10, 200),
				param("lengthMod", "Length Mod", 0, 2, 0.1, 1)),
			alg("v2", "Preferential Attachment",
				param("initialNodes", "Initial Nodes", 2, 10, 1, 3),
				param("growthRate", "Growth Interval", 0.1, 5, 0.1, 2),
				param("edgesPerNode", "Edges/Node", 1, 5, 1, 2),
				param("attractionMod", "Attraction Mod", 0, 5, 0.1, 1)),
			alg("v3", "Small World",
				param("nodes", "Nodes", 10, 80, 1, 30),
				param("neighbors", "Neighbors", 2, 10, 2, 4),
				param("rewireProb", "Rewire Probability", 0, 1, 0.01, 0.1),
				param("rewireMod", "Rewire Mod", 0, 1, 0.01, 0.2)),
		},
	},
	{
		ID: "hyperbolic", Name: "Hyperbolic", Description: "Projection in a hyperbolic plane.",
		Algorithms: []engine.AlgorithmDescriptor{
			alg("v0", "Golden Spiral",
				param("scale", "Scale", 50, 200, 5, 100),
				param("points", "Points", 100, 500, 10, 200)),
			alg("v1", "Twisted Disc",
				param("scale", "Scale", 50, 200, 5, 100),
				param("points", "Points", 100, 500, 10, 250),
				param("twist", "Twist", 0, 5, 0.1, 1)),
			alg("v2", "Half Plane",
				param("gridSize", "Grid Size", 5, 40, 1, 20),
				param("amplitude", "Amplitude", 10, 100, 1, 50)),
			alg("v3", "Warped Grid",
				param("rings", "Rings", 3, 20, 1, 10),
				param("spokes", "Spokes", 6, 48, 1, 24),
				param("warp", "Warp", 0, 1, 0.01, 0.2)),
		},
	},
	{
		ID: "zeta", Name: "Zeta Scattering", Description: "Zeros of the Riemann zeta function as resonant states.",
		Algorithms: []engine.AlgorithmDescriptor{
			alg("v0", "Mirrored Cloud",
				param("density", "Density", 100, 1000, 10, 400),
				param("spread", "Spread", 1, 10, 0.5, 5)),
			alg("v1", "Resonant Strings",
				param("numZeros", "Zeros", 1, 20, 1, 20),
				param("amplitude", "Amplitude", 10, 150, 1, 80),
				param("spread", "Spread", 1, 10, 0.5, 5)),
			alg("v2", "Scattering",
				param("particles", "Particles", 10, 200, 1, 50),
				param("energyScale", "Energy Scale", 0.1, 5, 0.1, 1),
				param("potentialAmp", "Potential", 0, 150, 1, 50)),
			alg("v3", "Lobed Rings",
				param("numZeros", "Zeros", 1, 20, 1, 8),
				param("spread", "Spread", 5, 50, 1, 20),
				param("phaseMod", "Phase Mod", 0, 5, 0.1, 2)),
		},
	},
	{
		ID: "homology", Name: "Persistent Homology", Description: "Topological features persisting across scales.",
		Algorithms: []engine.AlgorithmDescriptor{
			alg("v0", "Classic Graph",
				param("range", "Range", 50, 400, 10, 200),
				param("points", "Points", 10, 120, 1, 60),
				param("amplitude", "Amplitude", 10, 150, 1, 50),
				param("filtrationSpeed", "Filtration Speed", 5, 50, 1, 20)),
			alg("v1", "Density Cloud",
				param("points", "Points", 20, 100, 1, 50),
				param("updateRate", "Update Rate", 0, 50, 1, 10),
				param("filtrationSpeed", "Filtration Speed", 5, 50, 1, 20)),
			alg("v2", "Level Sets",
				param("gridSize", "Grid Size", 10, 100, 1, 50),
				param("noise", "Noise", 0, 1, 0.05, 0.2),
				param("filtrationSpeed", "Filtration Speed", 5, 50, 1, 20),
				palette),
			alg("v3", "Persistence Barcodes",
				param("points", "Points", 10, 80, 1, 40),
				param("noise", "Noise", 0, 1, 0.05, 0.1),
				param("maxRadius", "Max Radius", 20, 300, 5, 100)),
		},
	},
	{
		ID: "attractor", Name: "Strange Attractor", Description: "The function perturbs a chaotic system.",
		Algorithms: []engine.AlgorithmDescriptor{
			alg("v0", "Lorenz",
				param("points", "Trail Points", 100, 5000, 100, 1000),
				param("scale", "Scale", 1, 30, 0.5, 10),
				param("sigma", "Sigma", 1, 20, 0.1, 10),
				param("rho", "Rho", 1, 50, 0.5, 28),
				param("beta", "Beta", 0.5, 5, 0.01, 8.0/3.0)),
			alg("v1", "Rössler",
				param("points", "Trail Points", 100, 5000, 100, 1000),
				param("scale", "Scale", 1, 40, 0.5, 20),
				param("a", "A", 0, 1, 0.01, 0.2),
				param("b", "B", 0, 1, 0.01, 0.2),
				param("c", "C", 1, 15, 0.1, 5.7)),
			alg("v2", "De Jong",
				param("points", "Points", 500, 10000, 100, 2000),
				param("scale", "Scale", 20, 300, 5, 150),
				param("a", "A", -3, 3, 0.01, 1.4),
				param("b", "B", -3, 3, 0.01, -2.3),
				param("c", "C", -3, 3, 0.01, 2.4),
				param("d", "D", -3, 3, 0.01, -2.1)),
		},
	},
}
