// Package analysis sweeps the arm's joint space.
//
//   - [SampleWorkspace]: end-effector positions over a regular joint grid,
//     with bounds and reach statistics
//   - [AuditConsistency]: worst disagreement between the closed-form
//     position and the composed frame chain over the same grid
//
// Both sweeps split the grid into chunks and evaluate them with
// [ParallelFor].
//
//	ws, err := analysis.SampleWorkspace(kinematics.DefaultLinkLengths(), 15)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(ws.MaxReach, ws.Bounds.Max.Z)
package analysis
