package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lizzyKeypad/internal/domain"
)

func TestReduceAll_Display(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
	}{
		{name: "начальное состояние", keys: nil, want: "0"},
		{name: "цифры склеиваются", keys: []string{"1", "2", "3"}, want: "123"},
		{name: "ведущий ноль заменяется", keys: []string{"0", "7"}, want: "7"},
		{name: "несколько нулей схлопываются", keys: []string{"0", "0", "0"}, want: "0"},
		{name: "ноль после цифры сохраняется", keys: []string{"1", "0", "0"}, want: "100"},
		{name: "простое сложение", keys: []string{"5", "+", "3", "="}, want: "8"},
		{name: "цепочка без приоритета", keys: []string{"2", "+", "3", "*", "4", "="}, want: "20"},
		{name: "промежуточный результат цепочки", keys: []string{"2", "+", "3", "*"}, want: "5"},
		{name: "смена оператора", keys: []string{"5", "+", "-", "3", "="}, want: "2"},
		{name: "повтор того же оператора", keys: []string{"5", "+", "+", "3", "="}, want: "8"},
		{name: "процент", keys: []string{"5", "0", "%"}, want: "0.5"},
		{name: "процент от дроби", keys: []string{"1", ".", "5", "%"}, want: "0.015"},
		{name: "деление на ноль", keys: []string{"5", "/", "0", "="}, want: "Infinity"},
		{name: "ноль на ноль", keys: []string{"0", "/", "0", "="}, want: "NaN"},
		{name: "отрицательная бесконечность", keys: []string{"5", "+/-", "/", "0", "="}, want: "-Infinity"},
		{name: "дробный результат", keys: []string{"1", "/", "4", "="}, want: "0.25"},
		{name: "точность float", keys: []string{".", "1", "+", ".", "2", "="}, want: "0.30000000000000004"},
		{name: "точка во втором операнде", keys: []string{"5", "+", ".", "5", "="}, want: "5.5"},
		{name: "смена знака", keys: []string{"1", "2", "+/-"}, want: "-12"},
		{name: "смена знака нуля с точкой", keys: []string{".", "+/-"}, want: "-0."},
		{name: "равно без оператора", keys: []string{"4", "2", "="}, want: "42"},
		{name: "цифра после равно дописывается", keys: []string{"5", "+", "3", "=", "1"}, want: "81"},
		{name: "неизвестная клавиша", keys: []string{"4", "sqrt", "2"}, want: "42"},
		{name: "равно без второго операнда", keys: []string{"6", "*", "="}, want: "36"},
		{name: "вычисления с бесконечностью", keys: []string{"5", "/", "0", "+", "1", "="}, want: "Infinity"},
		{name: "экспоненциальная запись", keys: []string{"1", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0", "*", "1", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0", "0", "="}, want: "1e+21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReduceAll(New(), tt.keys...)
			assert.Equal(t, tt.want, got.Display)
		})
	}
}

func TestReduce_ClearReturnsInitial(t *testing.T) {
	sequences := [][]string{
		{},
		{"1", "2"},
		{"5", "+"},
		{"5", "+", "3"},
		{"5", "/", "0", "="},
		{".", "+/-", "%"},
		{"2", "+", "3", "*", "4"},
	}

	for _, keys := range sequences {
		s := Reduce(ReduceAll(New(), keys...), LabelClear)
		assert.Equal(t, New(), s, "после AC состояние должно быть начальным (%v)", keys)
		assert.True(t, s.IsInitial())
	}
}

func TestReduce_DecimalIdempotent(t *testing.T) {
	for _, keys := range [][]string{{}, {"3"}, {"3", "."}, {"1", ".", "5"}, {"5", "+"}} {
		once := ReduceAll(New(), append(append([]string{}, keys...), ".")...)
		twice := Reduce(once, ".")
		assert.Equal(t, once, twice, "повторная точка не должна ничего менять (%v)", keys)
	}
}

func TestReduce_SignRoundTrip(t *testing.T) {
	for _, keys := range [][]string{{}, {"7"}, {"7", "."}, {"0", "."}, {"1", ".", "2", "5"}, {"-"}} {
		s := ReduceAll(New(), keys...)
		back := ReduceAll(s, LabelSign, LabelSign)
		assert.Equal(t, s.Display, back.Display, "двойная смена знака должна вернуть строку (%v)", keys)
	}
}

func TestReduce_OperatorState(t *testing.T) {
	s := ReduceAll(New(), "5", "+")
	assert.Equal(t, "5", s.Display)
	assert.True(t, s.HasFirstOperand)
	assert.Equal(t, 5.0, s.FirstOperand)
	assert.Equal(t, domain.OpAdd, s.Operator)
	assert.True(t, s.WaitingForSecondOperand)

	s = Reduce(s, "3")
	assert.Equal(t, "3", s.Display)
	assert.False(t, s.WaitingForSecondOperand)

	s = Reduce(s, "=")
	assert.Equal(t, "8", s.Display)
	assert.False(t, s.HasFirstOperand)
	assert.Equal(t, domain.OpNone, s.Operator)
	assert.False(t, s.WaitingForSecondOperand)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	s := ReduceAll(New(), "1", "2")
	_ = ReduceAll(s, "+", "3", "=")
	assert.Equal(t, "12", s.Display)
	assert.Equal(t, domain.OpNone, s.Operator)
}

func TestApply_Computation(t *testing.T) {
	s := ReduceAll(New(), "2", "+", "3")

	next, comp := Apply(s, Classify("*"))
	require.NotNil(t, comp, "смена оператора в цепочке разрешает операцию")
	assert.Equal(t, Computation{Left: 2, Right: 3, Operator: domain.OpAdd, Result: 5}, *comp)
	assert.Equal(t, 5.0, next.FirstOperand)
	assert.Equal(t, domain.OpMul, next.Operator)

	next = Reduce(next, "4")
	_, comp = Apply(next, Classify("="))
	require.NotNil(t, comp)
	assert.Equal(t, Computation{Left: 5, Right: 4, Operator: domain.OpMul, Result: 20}, *comp)
}

func TestApply_NoComputation(t *testing.T) {
	cases := []struct {
		name  string
		keys  []string
		label string
	}{
		{name: "первый оператор", keys: []string{"5"}, label: "+"},
		{name: "равно без оператора", keys: []string{"5"}, label: "="},
		{name: "цифра", keys: []string{"5", "+"}, label: "3"},
		{name: "процент", keys: []string{"5"}, label: "%"},
		{name: "замена оператора", keys: []string{"5", "+"}, label: "-"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, comp := Apply(ReduceAll(New(), tc.keys...), Classify(tc.label))
			assert.Nil(t, comp)
		})
	}
}

func TestApply_DivisionByZero(t *testing.T) {
	_, comp := Apply(ReduceAll(New(), "5", "/", "0"), Classify("="))
	require.NotNil(t, comp)
	assert.True(t, math.IsInf(comp.Result, 1))
}
