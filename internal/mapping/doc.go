// Package mapping provides the control name map: the versioned table of
// correspondences between source animation channels and target control
// board attributes, with YAML schema definitions, parsing, and the value
// transform registry.
//
// The table used to live as a hardcoded dictionary keyed by rig-specific
// names; it is now an explicit, externally editable YAML file so rig
// naming-convention changes never touch the transfer engine.
//
// # Key capabilities
//
//   - Simplified "controls" shorthand for plain 1:1 channel mappings
//   - Full "entries" form with named value transforms
//   - Several entries may share a target attribute; the engine composes
//     them additively
//   - Ignore list for channels deliberately never transferred
//   - Affine transform definitions plus the builtin "negate"
//   - O(1) lookup by source channel id after compilation
//
// # Schema Overview
//
// The mapping file has the following structure:
//
//	version: "2"
//	rigs:
//	  source: metahuman_anim_sequence
//	  target: face_control_board
//	# Simplified 1:1 mappings
//	controls:
//	  CTRL_expressions_jawOpen: CTRL_jawOpen.ty
//	  CTRL_expressions_browRaiseInL: CTRL_L_brow_raiseIn.ty
//	# Full entries with transforms
//	entries:
//	  - source: CTRL_expressions_eyeLookDownL
//	    target: CTRL_L_eye.ty
//	    transform: negate
//	  - source: CTRL_expressions_mouthCornerDepressL
//	    target: {node: CTRL_L_mouth_corner, channel: ty}
//	    transform: negate
//	# Channels never transferred
//	ignore:
//	  - CTRL_faceGUI
//	transforms:
//	  - name: eyeLookScale
//	    scale: 0.5
//
// A target written as a bare string splits on the last dot; a string
// without a dot gets the default board channel "ty" (controls on the
// board travel vertically unless stated otherwise).
package mapping
