package mcdatagen

var stairVariants = Variants{
	SV("normal", V("stairs", 0, 0)),
	SV("facing=north,half=bottom,shape=straight", V("stairs", 0, 270)),
	SV("facing=east,half=bottom,shape=straight", V("stairs", 0, 0)),
	SV("facing=west,half=bottom,shape=straight", V("stairs", 0, 180)),
	SV("facing=south,half=bottom,shape=straight", V("stairs", 0, 90)),

	SV("facing=north,half=bottom,shape=outer_right", V("outer_stairs", 0, 270)),
	SV("facing=east,half=bottom,shape=outer_right", V("outer_stairs", 0, 0)),
	SV("facing=south,half=bottom,shape=outer_right", V("outer_stairs", 0, 90)),
	SV("facing=west,half=bottom,shape=outer_right", V("outer_stairs", 0, 180)),

	SV("facing=north,half=bottom,shape=outer_left", V("outer_stairs", 0, 270)),
	SV("facing=east,half=bottom,shape=outer_left", V("outer_stairs", 0, 270)),
	SV("facing=south,half=bottom,shape=outer_left", V("outer_stairs", 0, 0)),
	SV("facing=west,half=bottom,shape=outer_left", V("outer_stairs", 0, 90)),

	SV("facing=north,half=bottom,shape=inner_right", V("inner_stairs", 0, 270)),
	SV("facing=east,half=bottom,shape=inner_right", V("inner_stairs", 0, 0)),
	SV("facing=south,half=bottom,shape=inner_right", V("inner_stairs", 0, 90)),
	SV("facing=west,half=bottom,shape=inner_right", V("inner_stairs", 0, 180)),

	SV("facing=north,half=bottom,shape=inner_left", V("inner_stairs", 0, 180)),
	SV("facing=east,half=bottom,shape=inner_left", V("inner_stairs", 0, 270)),
	SV("facing=south,half=bottom,shape=inner_left", V("inner_stairs", 0, 0)),
	SV("facing=west,half=bottom,shape=inner_left", V("inner_stairs", 0, 90)),

	SV("facing=north,half=top,shape=straight", V("stairs", 180, 270)),
	SV("facing=east,half=top,shape=straight", V("stairs", 180, 0)),
	SV("facing=south,half=top,shape=straight", V("stairs", 180, 90)),
	SV("facing=west,half=top,shape=straight", V("stairs", 180, 180)),

	SV("facing=north,half=top,shape=outer_right", V("outer_stairs", 180, 0)),
	SV("facing=east,half=top,shape=outer_right", V("outer_stairs", 180, 90)),
	SV("facing=south,half=top,shape=outer_right", V("outer_stairs", 180, 180)),
	SV("facing=west,half=top,shape=outer_right", V("outer_stairs", 180, 270)),

	SV("facing=north,half=top,shape=outer_left", V("outer_stairs", 180, 270)),
	SV("facing=east,half=top,shape=outer_left", V("outer_stairs", 180, 0)),
	SV("facing=south,half=top,shape=outer_left", V("outer_stairs", 180, 90)),
	SV("facing=west,half=top,shape=outer_left", V("outer_stairs", 180, 180)),

	SV("facing=north,half=top,shape=inner_right", V("outer_stairs", 180, 0)),
	SV("facing=east,half=top,shape=inner_right", V("outer_stairs", 180, 90)),
	SV("facing=south,half=top,shape=inner_right", V("outer_stairs", 180, 180)),
	SV("facing=west,half=top,shape=inner_right", V("outer_stairs", 180, 270)),

	SV("facing=north,half=top,shape=inner_left", V("outer_stairs", 180, 270)),
	SV("facing=east,half=top,shape=inner_left", V("outer_stairs", 180, 0)),
	SV("facing=south,half=top,shape=inner_left", V("outer_stairs", 180, 90)),
	SV("facing=west,half=top,shape=inner_left", V("outer_stairs", 180, 180)),
}

var slabVariants = Variants{
	SV("normal", V("half_slab", 0, 0)),
	SV("half=bottom", V("half_slab", 0, 0)),
	SV("half=top", V("upper_slab", 0, 0)),
}

// Right-hinged doors use the "_rh" models; an open door is a closed door of
// the opposite hinge turned a quarter.
var doorVariants = Variants{
	SV("facing=east,half=lower,hinge=left,open=false", V("door_bottom", 0, 0)),
	SV("facing=south,half=lower,hinge=left,open=false", V("door_bottom", 0, 90)),
	SV("facing=west,half=lower,hinge=left,open=false", V("door_bottom", 0, 180)),
	SV("facing=north,half=lower,hinge=left,open=false", V("door_bottom", 0, 270)),
	SV("facing=east,half=lower,hinge=right,open=false", V("door_bottom_rh", 0, 0)),
	SV("facing=south,half=lower,hinge=right,open=false", V("door_bottom_rh", 0, 90)),
	SV("facing=west,half=lower,hinge=right,open=false", V("door_bottom_rh", 0, 180)),
	SV("facing=north,half=lower,hinge=right,open=false", V("door_bottom_rh", 0, 270)),
	SV("facing=east,half=lower,hinge=left,open=true", V("door_bottom_rh", 0, 90)),
	SV("facing=south,half=lower,hinge=left,open=true", V("door_bottom_rh", 0, 180)),
	SV("facing=west,half=lower,hinge=left,open=true", V("door_bottom_rh", 0, 270)),
	SV("facing=north,half=lower,hinge=left,open=true", V("door_bottom_rh", 0, 0)),
	SV("facing=east,half=lower,hinge=right,open=true", V("door_bottom", 0, 270)),
	SV("facing=south,half=lower,hinge=right,open=true", V("door_bottom", 0, 0)),
	SV("facing=west,half=lower,hinge=right,open=true", V("door_bottom", 0, 90)),
	SV("facing=north,half=lower,hinge=right,open=true", V("door_bottom", 0, 180)),
	SV("facing=east,half=upper,hinge=left,open=false", V("door_top", 0, 0)),
	SV("facing=south,half=upper,hinge=left,open=false", V("door_top", 0, 90)),
	SV("facing=west,half=upper,hinge=left,open=false", V("door_top", 0, 180)),
	SV("facing=north,half=upper,hinge=left,open=false", V("door_top", 0, 270)),
	SV("facing=east,half=upper,hinge=right,open=false", V("door_top_rh", 0, 0)),
	SV("facing=south,half=upper,hinge=right,open=false", V("door_top_rh", 0, 90)),
	SV("facing=west,half=upper,hinge=right,open=false", V("door_top_rh", 0, 180)),
	SV("facing=north,half=upper,hinge=right,open=false", V("door_top_rh", 0, 270)),
	SV("facing=east,half=upper,hinge=left,open=true", V("door_top_rh", 0, 90)),
	SV("facing=south,half=upper,hinge=left,open=true", V("door_top_rh", 0, 180)),
	SV("facing=west,half=upper,hinge=left,open=true", V("door_top_rh", 0, 270)),
	SV("facing=north,half=upper,hinge=left,open=true", V("door_top_rh", 0, 0)),
	SV("facing=east,half=upper,hinge=right,open=true", V("door_top", 0, 270)),
	SV("facing=south,half=upper,hinge=right,open=true", V("door_top", 0, 0)),
	SV("facing=west,half=upper,hinge=right,open=true", V("door_top", 0, 90)),
	SV("facing=north,half=upper,hinge=right,open=true", V("door_top", 0, 180)),
}

// StairVariants returns the canonical stair table: a "normal" fallback plus
// every facing, half and shape combination.
func StairVariants() Variants { return stairVariants.Copy() }

// SlabVariants returns the canonical slab table, including the legacy
// "normal" alias for the bottom half.
func SlabVariants() Variants { return slabVariants.Copy() }

// DoorVariants returns the canonical door table.
func DoorVariants() Variants { return doorVariants.Copy() }
