package synth

// Fixed dimensions in feet. Lengths are measured along the partition axis.
const (
	CorridorWidth = 6.0

	// serviceShare is the fraction of the non-corridor span given to the
	// service wing in the two-wing variants.
	serviceShare = 0.55

	// livingShare is the living room's length as a fraction of the plot
	// length along the partition axis.
	livingShare = 0.4

	kitchenLength    = 10.0
	officeLength     = 10.0
	masterLength     = 12.0
	masterBathLength = 6.0
	kidsLength       = 10.0
	guestLength      = 10.0
	bathLength       = 6.0

	stairWidth  = 6.0
	stairLength = 10.0
	stairShare  = 0.45

	balconyDepth  = 6.0
	balconyShare  = 0.5
	balconyOffset = 0.25
)

// Luxury variant proportions.
const (
	suiteShare    = 0.3
	diningShare   = 0.2
	utilityLength = 8.0
)

// Site extras.
const (
	siteGap   = 5.0
	siteShare = 0.1
)
