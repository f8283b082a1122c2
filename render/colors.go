package render

// Fixed palette for scene furniture and uncolored bodies
var (
	RGBBackground = RGB{26, 27, 38}    // Tokyo Night background
	RGBTableEdge  = RGB{180, 180, 180} // Brighter gray
	RGBCenterLine = RGB{90, 90, 110}   // Muted gray-blue
	RGBPuck       = RGB{255, 255, 255} // White
	RGBBat        = RGB{255, 165, 0}   // Orange, same as the cursor
	RGBFallback   = RGB{255, 0, 255}   // Magenta marks an unparseable palette entry
)
