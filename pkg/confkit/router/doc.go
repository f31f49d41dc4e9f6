// Package router sequences blocking screens, such as a settings screen
// followed by a restart notice, through one transition function.
//
// Each screen is a function from its input to its result. After a screen
// returns, the transition function decides what runs next:
//
//	const (
//	    ScreenSettings router.Screen = iota
//	    ScreenRestartNotice
//	)
//
//	r := router.New()
//	r.Register(ScreenSettings, func(input any) (any, error) {
//	    return runSettings(input.(SettingsInput))
//	})
//	r.Register(ScreenRestartNotice, func(input any) (any, error) {
//	    return showNotice(input.(NoticeInput))
//	})
//	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
//	    if from == ScreenSettings && result.(confkit.ScreenResult).RestartRequired {
//	        return ScreenRestartNotice, NoticeInput{}
//	    }
//	    return router.ScreenExit, nil
//	})
//	err := r.Run(ScreenSettings, SettingsInput{})
//
// # Back navigation
//
// A transition that goes forward may Push the current screen with resume
// state, like the selected category. A screen returning ErrBack pops that
// entry and runs it again with the stored input and resume state, without
// consulting the transition function.
package router
