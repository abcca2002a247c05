package relaypager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Operator_Valid(t *testing.T) {
	assert.True(t, OperatorGT.Valid())
	assert.True(t, OperatorLT.Valid())
	assert.False(t, operatorEq.Valid())
	assert.False(t, Operator("!=").Valid())
}

func Test_Operator_ForOrdering(t *testing.T) {
	assert.Equal(t, DirectionASC, OperatorGT.ForOrdering())
	assert.Equal(t, DirectionDESC, OperatorLT.ForOrdering())
}

func Test_Direction_ForOperator(t *testing.T) {
	assert.Equal(t, OperatorGT, DirectionASC.ForOperator())
	assert.Equal(t, OperatorLT, DirectionDESC.ForOperator())
}
