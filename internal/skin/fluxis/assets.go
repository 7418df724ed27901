package fluxis

// MaxKeymode is the largest keymode read from overrides.
const MaxKeymode = 10

const Icon = "icon"

const (
	JudgementMiss     = "Judgement/miss"
	JudgementOkay     = "Judgement/okay"
	JudgementAlright  = "Judgement/alright"
	JudgementGreat    = "Judgement/great"
	JudgementPerfect  = "Judgement/perfect"
	JudgementFlawless = "Judgement/flawless"
)

const (
	StageBackground        = "Stage/background"
	StageBackgroundTop     = "Stage/background-top"
	StageBackgroundBottom  = "Stage/background-bottom"
	StageBorderLeft        = "Stage/border-left"
	StageBorderLeftTop     = "Stage/border-left-top"
	StageBorderLeftBottom  = "Stage/border-left-bottom"
	StageBorderRight       = "Stage/border-right"
	StageBorderRightTop    = "Stage/border-right-top"
	StageBorderRightBottom = "Stage/border-right-bottom"
	StageLaneCoverTop      = "Stage/lane-cover-top"
	StageLaneCoverBottom   = "Stage/lane-cover-bottom"
	StageHitline           = "Stage/hitline"
)

const (
	UserInterfaceBackground = "UserInterface/background"
	HealthBackground        = "Health/background"
	HealthForeground        = "Health/foreground"
	ColumnLighting          = "Lighting/column-lighting"
	FailFlash               = "Gameplay/fail-flash"
)

const (
	SampleUIBack              = "Samples/UI/back"
	SampleUISelect            = "Samples/UI/select"
	SampleUIHover             = "Samples/UI/hover"
	SampleUIClick             = "Samples/UI/click"
	SampleUIClickDisabled     = "Samples/UI/click-disabled"
	SampleUISkinSelectClick   = "Samples/UI/skin-select-click"
	SampleCourseConfirm       = "Samples/Course/confirm"
	SampleCourseComplete      = "Samples/Course/complete"
	SampleCourseFailed        = "Samples/Course/failed"
	SampleGameplayHit         = "Samples/Gameplay/hit"
	SampleGameplayMiss        = "Samples/Gameplay/miss"
	SampleGameplayFail        = "Samples/Gameplay/fail"
	SampleGameplayRestart     = "Samples/Gameplay/restart"
	SampleGameplayFullCombo   = "Samples/Gameplay/full-combo"
	SampleGameplayAllFlawless = "Samples/Gameplay/all-flawless"
)

// JudgementAssets lists judgement textures, worst first.
var JudgementAssets = []string{
	JudgementMiss, JudgementOkay, JudgementAlright, JudgementGreat, JudgementPerfect, JudgementFlawless,
}

var StageAssets = []string{
	StageBackground, StageBackgroundTop, StageBackgroundBottom,
	StageBorderLeft, StageBorderLeftTop, StageBorderLeftBottom,
	StageBorderRight, StageBorderRightTop, StageBorderRightBottom,
	StageLaneCoverTop, StageLaneCoverBottom, StageHitline,
}

var ResultAssets = []string{
	"Results/rank-x", "Results/rank-ss", "Results/rank-s", "Results/rank-aa",
	"Results/rank-a", "Results/rank-b", "Results/rank-c", "Results/rank-d",
}

var SampleAssets = []string{
	SampleUIBack, SampleUISelect, SampleUIHover, SampleUIClick,
	SampleUIClickDisabled, SampleUISkinSelectClick,
	SampleCourseConfirm, SampleCourseComplete, SampleCourseFailed,
	SampleGameplayHit, SampleGameplayMiss, SampleGameplayFail, SampleGameplayRestart,
	SampleGameplayFullCombo, SampleGameplayAllFlawless,
}
