package pilot

import (
	"maps"
	"slices"
)

// builtins maps script names to their source
var builtins = map[string]string{
	"hunter":  hunterScript,
	"sweeper": sweeperScript,
}

// Builtin returns the source of a built-in script
func Builtin(name string) (string, bool) {
	code, ok := builtins[name]
	return code, ok
}

// Names returns the built-in script names in sorted order
func Names() []string {
	return slices.Sorted(maps.Keys(builtins))
}

// hunterScript chases the lowest alien, leading it by the bullet's flight time
const hunterScript = `
function centre(b) {
    return b.x + b.w / 2;
}

function decide(ctx) {
    if (!ctx.active) {
        return { play: true };
    }
    if (ctx.paused || ctx.aliens.length === 0) {
        return {};
    }

    var shipX = centre(ctx.ship);
    var target = null;
    for (var i = 0; i < ctx.aliens.length; i++) {
        var a = ctx.aliens[i];
        if (target === null || a.y > target.y ||
            (a.y === target.y && Math.abs(centre(a) - shipX) < Math.abs(centre(target) - shipX))) {
            target = a;
        }
    }

    var flight = (ctx.ship.y - (target.y + target.h)) / ctx.bulletSpeed;
    var aimX = centre(target) + ctx.fleetDirection * ctx.alienSpeed * flight;
    var slack = Math.max(ctx.shipSpeed, 2);

    return {
        left: aimX < shipX - slack,
        right: aimX > shipX + slack,
        fire: ctx.tick % 2 === 0 &&
            Math.abs(aimX - shipX) < target.w / 2 &&
            ctx.bullets.length < ctx.bulletsAllowed
    };
}
`

// sweeperScript runs the ship from wall to wall, firing on a fixed cadence
const sweeperScript = `
var direction = 1;

function decide(ctx) {
    if (!ctx.active) {
        return { play: true };
    }
    if (ctx.ship.x + ctx.ship.w >= ctx.width) {
        direction = -1;
    } else if (ctx.ship.x <= 0) {
        direction = 1;
    }
    return {
        left: direction < 0,
        right: direction > 0,
        fire: ctx.tick % 8 === 0
    };
}
`
