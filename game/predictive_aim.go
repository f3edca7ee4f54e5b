package game

import "math"

// PredictiveAim calculates where a projectile fired from shooter at
// projectileSpeed should be aimed to meet a target moving with a constant
// velocity. Speeds are per tick.
func PredictiveAim(shooter, target, targetVel Vector2, projectileSpeed float64) Vector2 {
	// If target is not moving, just return current position
	if math.Abs(targetVel.X) < 0.1 && math.Abs(targetVel.Y) < 0.1 {
		return target
	}

	distance := target.Sub(shooter).Len()
	if distance < 1.0 || projectileSpeed <= 0 {
		return target
	}

	// Find time t such that
	// distance(shooter, target + targetVel * t) = projectileSpeed * t,
	// starting from the time to reach the current target position
	t := distance / projectileSpeed
	for i := 0; i < 5; i++ {
		predicted := target.Add(targetVel.Scale(t))
		predictedDistance := predicted.Sub(shooter).Len()
		if predictedDistance <= 0 {
			break
		}
		newT := predictedDistance / projectileSpeed
		if math.Abs(newT-t) < 0.001 {
			break
		}
		t = newT
	}

	return target.Add(targetVel.Scale(t))
}
