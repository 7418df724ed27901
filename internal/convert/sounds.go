package convert

import (
	"skinbridge/internal/skin/fluxis"
	"skinbridge/internal/skin/generic"
	"skinbridge/internal/skin/osu"
)

type soundName struct {
	slot generic.SoundSlot
	name string
}

var osuSounds = []soundName{
	{generic.SoundMenuBackClick, osu.SampleMenuBack},
	{generic.SoundUIClick, osu.SampleMenuClick},
	{generic.SoundUISelect, osu.SampleMenuHit},
	{generic.SoundUIHover, osu.SampleClickShort},
	{generic.SoundMiss, osu.SampleComboBreak},
	{generic.SoundFail, osu.SampleFailSound},
	{generic.SoundRestart, osu.SamplePauseRetryClick},
	{generic.SoundHit, osu.SampleNormalHitNormal},
}

var fluxisSounds = []soundName{
	{generic.SoundMenuBackClick, fluxis.SampleUIBack},
	{generic.SoundUIClick, fluxis.SampleUIClick},
	{generic.SoundUISelect, fluxis.SampleUISelect},
	{generic.SoundUIHover, fluxis.SampleUIHover},
	{generic.SoundMiss, fluxis.SampleGameplayMiss},
	{generic.SoundFail, fluxis.SampleGameplayFail},
	{generic.SoundRestart, fluxis.SampleGameplayRestart},
	{generic.SoundHit, fluxis.SampleGameplayHit},
}
