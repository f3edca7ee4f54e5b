package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectileSystemCapAndCooldown(t *testing.T) {
	w, _ := testWorld(t)
	p := NewProjectileSystem(w, GetWeaponConfig(WeaponTypeBlaster))

	var fired []int
	for tick := 0; tick < 300; tick++ {
		if p.Fire(Vector3{500, 400, 0}, Vector3{1, 0, 0}) {
			fired = append(fired, tick)
		}
		require.LessOrEqual(t, len(p.Bullets()), 3)
		p.Update()
	}

	require.NotEmpty(t, fired)
	for i := 1; i < len(fired); i++ {
		assert.GreaterOrEqual(t, fired[i]-fired[i-1], 15, "shots %d and %d", i-1, i)
	}
	// Three shots fill the pool, the fourth waits for the first to expire
	assert.Equal(t, []int{0, 15, 30, 50}, fired[:4])
}

func TestProjectileSystemFireIsNoopWhenBlocked(t *testing.T) {
	w, _ := testWorld(t)
	p := NewProjectileSystem(w, GetWeaponConfig(WeaponTypeBlaster))

	require.True(t, p.CanFire())
	require.True(t, p.Fire(Vector3{}, Vector3{}))
	assert.False(t, p.CanFire())
	assert.False(t, p.Fire(Vector3{}, Vector3{}))
	assert.Len(t, p.Bullets(), 1)
	assert.Equal(t, 15, p.Cooldown())
}

func TestBulletLifetime(t *testing.T) {
	w, _ := testWorld(t)
	p := NewProjectileSystem(w, GetWeaponConfig(WeaponTypeBlaster))
	require.True(t, p.Fire(Vector3{100, 100, 0}, Vector3{1, 0, 0}))
	b := p.Bullets()[0]
	assert.Equal(t, 50, b.TTL())

	for i := 1; i < 50; i++ {
		p.Update()
		require.Len(t, p.Bullets(), 1)
		assert.Equal(t, 50-i, b.TTL())
	}
	p.Update()
	assert.Empty(t, p.Bullets())
}

func TestBulletExpire(t *testing.T) {
	w, _ := testWorld(t)
	p := NewProjectileSystem(w, GetWeaponConfig(WeaponTypeBlaster))
	require.True(t, p.Fire(Vector3{100, 100, 0}, Vector3{1, 0, 0}))

	b := p.Bullets()[0]
	p.Expire(b)
	assert.True(t, b.Expired())
	assert.Len(t, p.Bullets(), 1)

	p.Update()
	assert.Empty(t, p.Bullets())
}

func TestBulletWraps(t *testing.T) {
	w, _ := testWorld(t)
	p := NewProjectileSystem(w, GetWeaponConfig(WeaponTypeBlaster))
	require.True(t, p.Fire(Vector3{1020, 400, 0}, Vector3{10, 0, 0}))

	p.Update()
	assert.Equal(t, Vector3{-BulletWrapDist, 400, 0}, p.Bullets()[0].Position())
}

func TestBulletDraw(t *testing.T) {
	w, _ := testWorld(t)
	p := NewProjectileSystem(w, GetWeaponConfig(WeaponTypeSaucerGun))
	require.True(t, p.Fire(Vector3{}, Vector3{}))

	r := newRecordingRenderer()
	p.Draw(r)
	assert.Equal(t, 1, r.bullets)
	assert.Equal(t, 1, p.Damage())
}
