package core

// Kind names of the built-in nodes.
const (
	KindSequence     = "sequence"
	KindXor          = "xor"
	KindSelector     = "selector"
	KindInverter     = "inverter"
	KindGuard        = "guard"
	KindInterrogator = "interrogator"
	KindLimiter      = "limiter"
	KindStarter      = "starter"
	KindWait         = "wait"
)
