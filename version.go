package simulator

// Version is the simulator release version.
const Version = "1.0.0"
